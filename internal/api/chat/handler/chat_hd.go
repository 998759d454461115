package chatHandler

import (
	"ChatbotGolang/internal/api/chat"
	contextPkg "ChatbotGolang/pkg/context"
	"ChatbotGolang/pkg/handlerUtil"
	"ChatbotGolang/pkg/log"
	"fmt"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

func (h *ChatHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req chat.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("Failed to parse chat request")
		return errHandler.Handle(ctx, requestID, chat.ErrInvalidRequestBody, ctx.Path(), "chat")
	}

	if req.Message == nil {
		return errHandler.Handle(ctx, requestID, chat.ErrMessageRequired, ctx.Path(), "chat")
	}

	if h.maxMessageLength > 0 {
		if err := h.validator.Var(*req.Message, fmt.Sprintf("max=%d", h.maxMessageLength)); err != nil {
			return errHandler.HandleValidationError(ctx, requestID,
				fmt.Errorf("message must be at most %d characters", h.maxMessageLength), ctx.Path())
		}
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"length":     utf8.RuneCountInString(*req.Message),
	}).Info("Message received")

	res, err := h.chatService.Reply(contextPkg.FromFiberCtx(ctx), *req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
}
