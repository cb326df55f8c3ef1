// Package bridge exposes one connected ESPHome device over HTTP, for
// callers that would rather poll/post JSON than link internal/client
// directly.
package bridge

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/esphome/esphomeapi-go/internal/client"
)

// ServerConfig configures the bridge's HTTP server.
type ServerConfig struct {
	Port   string
	Logger *zap.SugaredLogger
	Device *client.Client
}

// Server is the HTTP front end for one connected device.
type Server struct {
	app     *fiber.App
	config  ServerConfig
	handler *deviceHandler
}

// NewServer builds a Server. Call Start to begin serving.
func NewServer(config ServerConfig) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "esphomeapi-go bridge",
		ServerHeader: "esphomeapi-go",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	h := newDeviceHandler(config.Device, config.Logger)

	s := &Server{app: app, config: config, handler: h}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handler.Health)

	v1 := s.app.Group("/api/v1")
	v1.Get("/device-info", s.handler.DeviceInfo)
	v1.Get("/entities", s.handler.ListEntities)
	v1.Get("/services", s.handler.ListServices)
	v1.Post("/subscribe", s.handler.Subscribe)
	v1.Get("/states", s.handler.AllStates)
	v1.Get("/states/:key", s.handler.State)

	cmd := v1.Group("/command")
	cmd.Post("/switch/:key", s.handler.SwitchCommand)
	cmd.Post("/button/:key", s.handler.ButtonCommand)
	cmd.Post("/light/:key", s.handler.LightCommand)
	cmd.Post("/cover/:key", s.handler.CoverCommand)
	cmd.Post("/fan/:key", s.handler.FanCommand)
	cmd.Post("/climate/:key", s.handler.ClimateCommand)
	cmd.Post("/number/:key", s.handler.NumberCommand)
	cmd.Post("/select/:key", s.handler.SelectCommand)
	cmd.Post("/lock/:key", s.handler.LockCommand)
}

// Start begins serving on the configured port.
func (s *Server) Start() error {
	return s.app.Listen(fmt.Sprintf(":%s", s.config.Port))
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	return s.app.Shutdown()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
