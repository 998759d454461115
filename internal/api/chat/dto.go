package chat

// ChatRequest keeps Message as a pointer so an absent field can be told apart
// from an empty string.
type ChatRequest struct {
	Message *string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
