package app

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mediaclay/mediaclay-api/internal/http/routes"
	applog "github.com/mediaclay/mediaclay-api/internal/platform/logging"
	appmiddleware "github.com/mediaclay/mediaclay-api/internal/platform/middleware"
	"github.com/mediaclay/mediaclay-api/internal/platform/respond"
)

// Title is the API name reported in the OpenAPI document.
const Title = "MediaClay API"

// APIConfig returns the huma configuration for the service. The OpenAPI,
// docs, and schema routes are disabled so GET / is the only route served.
func APIConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	return cfg
}

// NewRouter builds the HTTP handler handed to the hosting supervisor.
func NewRouter(version string) chi.Router {
	router, _ := newAPI(version, applog.Logger())
	return router
}

func newAPI(version string, logger *zap.Logger) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; the service must sit
		// behind the platform's proxy.
		chimiddleware.RealIP,
		applog.RequestLogger(logger),
		applog.AccessLogger(),
		respond.Recoverer(),
		// HEAD falls through to the GET route; net/http drops the body.
		chimiddleware.GetHead,
	)

	api := humachi.New(router, APIConfig(version))
	routes.Register(api)
	return router, api
}
