package entity

// Intent is one category of user request with example phrases and the replies
// the bot may answer with.
type Intent struct {
	Tag       string   `json:"tag" validate:"required"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses" validate:"required,min=1,dive,required"`
}

type IntentFile struct {
	Intents []Intent `json:"intents" validate:"required,min=1,dive"`
}
