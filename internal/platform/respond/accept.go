package respond

import (
	"slices"
	"strconv"
	"strings"
)

type acceptRange struct {
	mediaType string
	q         float64
}

// parseAccept splits an Accept header into media ranges. Ranges with a
// malformed or out-of-range q parameter are dropped.
func parseAccept(header string) []acceptRange {
	var ranges []acceptRange
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mediaType := strings.ToLower(strings.TrimSpace(params[0]))
		if mediaType == "" {
			continue
		}
		q, ok := 1.0, true
		for _, p := range params[1:] {
			name, value, found := strings.Cut(strings.TrimSpace(p), "=")
			if !found || !strings.EqualFold(strings.TrimSpace(name), "q") {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || v < 0 || v > 1 {
				ok = false
				break
			}
			q = v
		}
		if ok {
			ranges = append(ranges, acceptRange{mediaType: mediaType, q: q})
		}
	}
	return ranges
}

// selectFormat picks CBOR only when the client ranks it strictly above JSON.
// Ties, wildcards, and unsupported types fall back to JSON.
func selectFormat(ranges []acceptRange) format {
	cborQ := qualityFor(ranges, "application/cbor", "application/problem+cbor")
	jsonQ := qualityFor(ranges, "application/json", "application/problem+json")
	if cborQ > 0 && cborQ > jsonQ {
		return formatCBOR
	}
	return formatJSON
}

// qualityFor returns the q-value of the most specific range matching any of
// the exact types, or -1 when nothing matches.
func qualityFor(ranges []acceptRange, exact ...string) float64 {
	best, bestRank := -1.0, 0
	for _, ar := range ranges {
		rank := 0
		switch {
		case slices.Contains(exact, ar.mediaType):
			rank = 3
		case ar.mediaType == "application/*":
			rank = 2
		case ar.mediaType == "*/*":
			rank = 1
		}
		if rank > bestRank || (rank == bestRank && rank > 0 && ar.q > best) {
			best, bestRank = ar.q, rank
		}
	}
	return best
}
