// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their
// corresponding handlers.
package router

import (
	"github.com/deppfellow/go-contacts/internal/handler"
	"github.com/deppfellow/go-contacts/internal/middleware"
	"github.com/deppfellow/go-contacts/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain,
// the global error handler and every route.
//
// Middleware order matters:
//   - RequestID runs before anything that logs or traces
//   - the New Relic transaction exists before EnhanceTracing and ContextEnhancer read it
//   - Recover is innermost so panics reach GlobalErrorHandler with the request logger
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(r, h)
	registerContactRoutes(r, h)

	return r
}
