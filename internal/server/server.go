package server

import (
	"context"
	"fmt"

	"github.com/fekalegi/property-management-system/api/handler"
	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/internal/booking"
	"github.com/fekalegi/property-management-system/internal/contact"
	"github.com/fekalegi/property-management-system/internal/tenant"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	_ "github.com/fekalegi/property-management-system/docs"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type Server struct {
	e    *echo.Echo
	port int
	log  zerolog.Logger
}

// Services are the resource services the router dispatches to.
type Services struct {
	Tenants  *tenant.Service
	Bookings *booking.Service
	Contacts *contact.Service
}

func NewServer(cfg *config.Config, svc Services, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recover())
	e.Use(RequestLogger(log))
	e.Use(CORS(cfg.Server.CORS))

	registerRoutes(e, cfg.Server.Prefix, svc)

	return &Server{
		e:    e,
		port: cfg.Server.Port,
		log:  log,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info().Str("addr", addr).Msg("Starting HTTP server")
	return s.e.Start(addr)
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.e.Shutdown(ctx)
}

func registerRoutes(e *echo.Echo, prefix string, svc Services) {
	e.GET("/", handler.Liveness)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(prefix)
	handler.NewTenantHandler(svc.Tenants).RegisterTenantRoutes(api)
	handler.NewBookingHandler(svc.Bookings).RegisterBookingRoutes(api)
	handler.NewContactHandler(svc.Contacts).RegisterContactRoutes(api)
}

func (s *Server) GetEcho() *echo.Echo {
	return s.e
}
