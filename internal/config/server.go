package config

import (
	chatHandler "ChatbotGolang/internal/api/chat/handler"
	chatService "ChatbotGolang/internal/api/chat/service"
	"ChatbotGolang/internal/catalog"
	"ChatbotGolang/internal/middleware"
	"ChatbotGolang/internal/model"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	env        Env
	catalog    *catalog.Catalog
	model      *model.Context
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.catalog == nil || server.model == nil {
		return nil, fmt.Errorf("intent catalog and model are required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithEnv(env Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithCatalog(c *catalog.Catalog) ServerOption {
	return func(s *Server) error {
		if c == nil {
			return fmt.Errorf("intent catalog is nil")
		}
		s.catalog = c
		return nil
	}
}

func WithModel(mc *model.Context) ServerOption {
	return func(s *Server) error {
		if mc == nil {
			return fmt.Errorf("model context is nil")
		}
		s.model = mc
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chat Domain
	selector := catalog.NewSelector(s.catalog)
	chatServices := chatService.New(s.log, s.model, selector)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices, s.env.MaxMessageLength)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	s.handlers = append(s.handlers, chatHandlers)
	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

// App exposes the engine so tests can drive it with app.Test.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	port := s.env.AppPort
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.engine.ShutdownWithContext(ctx)
}
