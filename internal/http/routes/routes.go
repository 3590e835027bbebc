package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/mediaclay/mediaclay-api/internal/http/greeting"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	greeting.Register(api)
}
