package middleware

import (
	"context"
	"fmt"
	"lendhub/config"
	"lendhub/infras/otel"
	"lendhub/shared/constant"
	"lendhub/shared/failure"
	"lendhub/transport/http/response"
	"net/http"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CallerID(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", request.Method, request.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.UserAgent(),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
		})

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// CallerID lifts the acting user's id from the X-Sharer-User-Id header into
// the request context. Requests without the header are rejected before they
// reach a handler.
func (a *appMiddleware) CallerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		callerID := request.Header.Get(constant.RequestHeaderSharerUserID)
		if callerID == constant.Empty {
			response.WithError(writer, failure.BadRequestFromString(constant.RequestHeaderSharerUserID+" header is required"))

			return
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, callerID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
