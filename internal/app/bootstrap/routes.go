// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/solarfair/internal/app/features/errors"
	healthfeature "github.com/dalemusser/solarfair/internal/app/features/health"
	registrationfeature "github.com/dalemusser/solarfair/internal/app/features/registration"
	"github.com/dalemusser/solarfair/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. SolarFair mounts the health endpoint for
// load balancers and the registration API that serves both the public form
// and the admin table.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Every request gets an id so server-error log lines can be matched to
	// the response the client saw.
	r.Use(requestid.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Registration API: public form submission plus the admin operations
	regHandler := registrationfeature.NewHandler(deps.MongoDatabase, errLog, logger, appCfg.PageSize)
	r.Mount("/registration", registrationfeature.Routes(regHandler))

	return r, nil
}
