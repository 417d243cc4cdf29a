package http

import (
	"fmt"
	"net/http"
	"sync"

	"sales/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerDoc serves the embedded OpenAPI document to swagger-ui.
type swaggerDoc struct {
	spec *openapi3.T
}

func (d swaggerDoc) ReadDoc() string {
	data, err := d.spec.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

var registerDocOnce sync.Once

// Register mounts the health check, the order API and the swagger UI on e.
func Register(e *echo.Echo, server *Server) error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi spec: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{spec: spec})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, server)
	return nil
}
