package chatService

import (
	"ChatbotGolang/internal/api/chat"
	contextPkg "ChatbotGolang/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) Reply(ctx context.Context, message string) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	prediction, err := s.classifier.Classify(message)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to classify message")
		return nil, chat.ErrClassifyMessage
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     prediction.Tag,
		"tokens":     prediction.Tokens,
	}).Debug("Message classified")

	reply, err := s.selector.Select(prediction.Tag)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"intent":     prediction.Tag,
			"error":      err.Error(),
		}).Error("Predicted intent is missing from the catalog")
		return nil, chat.ErrIntentNotFound
	}

	return &chat.ChatResponse{Response: reply}, nil
}
