package chatService

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../../mocks/mock_chat_service.go -package=mocks

import (
	"ChatbotGolang/internal/api/chat"
	"ChatbotGolang/internal/catalog"
	"context"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	Reply(ctx context.Context, message string) (*chat.ChatResponse, error)
}

type chatService struct {
	log        *logrus.Logger
	classifier IClassifier
	selector   catalog.ISelector
}

func New(
	log *logrus.Logger,
	classifier IClassifier,
	selector catalog.ISelector,
) IChatService {
	return &chatService{
		log:        log,
		classifier: classifier,
		selector:   selector,
	}
}
