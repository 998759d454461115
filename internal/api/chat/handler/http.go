package chatHandler

import (
	chatService "ChatbotGolang/internal/api/chat/service"
	"ChatbotGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	chatService      chatService.IChatService
	maxMessageLength int
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
	maxMessageLength int,
) *ChatHandler {
	return &ChatHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		chatService:      cs,
		maxMessageLength: maxMessageLength,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	srv.Post("/chat", h.Chat)
}
