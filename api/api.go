//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml ../spec/api.yaml
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// Registrar is the registration use case behind the submitRegistration action.
type Registrar interface {
	Submit(ctx context.Context, req registration.Request) (string, error)
}

var _ Registrar = (*registration.Registrar)(nil)

type API struct {
	registrar      Registrar
	logger         *slog.Logger
	env            Environment
	allowedOrigins []string
}

var _ StrictServerInterface = (*API)(nil)

func NewAPI(registrar Registrar, logger *slog.Logger, env Environment, allowedOrigins []string) *API {
	return &API{
		registrar:      registrar,
		logger:         logger,
		env:            env,
		allowedOrigins: allowedOrigins,
	}
}

// Handler serves the routes in spec/api.yaml behind the standard middleware chain.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}

	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	r := http.NewServeMux()

	HandlerFromMux(strictHandler, r)

	return useMiddlewares(r,
		a.loggingMiddleware(),
		a.recoverMiddleware(),
		a.corsMiddleware(),
		bodyLimitMiddleware(maxBodyBytes),
		a.openapiValidateMiddleware(swagger),
	), nil
}
