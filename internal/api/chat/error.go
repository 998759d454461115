package chat

import "ChatbotGolang/pkg/response"

var (
	ErrInvalidRequestBody = response.NewCodedError(400, "INVALID_REQUEST_BODY", "request body must be a JSON object with a string message")
	ErrMessageRequired    = response.NewCodedError(400, "MESSAGE_REQUIRED", "message is required")
	ErrClassifyMessage    = response.NewCodedError(500, "CLASSIFICATION_FAILED", "failed to classify message")
	ErrIntentNotFound     = response.NewCodedError(500, "INTENT_NOT_FOUND", "predicted intent has no responses")
)
