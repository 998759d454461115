package chatService

import "ChatbotGolang/internal/model"

// IClassifier is satisfied by *model.Context.
type IClassifier interface {
	Classify(text string) (model.Prediction, error)
}
