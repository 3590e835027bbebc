package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Register wires the greeting route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get the service greeting",
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Static greeting",
				Content: map[string]*huma.MediaType{
					"text/plain": {Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{Message}}},
				},
			},
		},
	}, getHandler)
}

// getHandler ignores the request entirely. It must not log or touch shared
// state; the body slice is never written to.
func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{ContentType: ContentType, Body: body}, nil
}
