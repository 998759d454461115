package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
)

// Env is the process configuration. Backend specific settings (AWS_*, REDIS_*,
// DB_*) are read by the client packages themselves.
type Env struct {
	AppPort            string `env:"APP_PORT,default=3000"`
	AppEnv             string `env:"APP_ENV,default=development"`
	LogLevel           string `env:"LOG_LEVEL,default=debug"`
	IntentsPath        string `env:"INTENTS_PATH,default=intents.json"`
	NormalizerLanguage string `env:"NORMALIZER_LANGUAGE,default=auto"`
	ArtifactStore      string `env:"ARTIFACT_STORE,default=file"`
	ArtifactDir        string `env:"ARTIFACT_DIR,default=."`
	ArtifactPrefix     string `env:"ARTIFACT_PREFIX,default=chatbot/"`
	CorsAllowOrigins   string `env:"CORS_ALLOW_ORIGINS,default=*"`
	MaxMessageLength   int    `env:"MAX_MESSAGE_LENGTH,default=2000"`
}

func LoadEnv() (Env, error) {
	var cfg Env
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.MaxMessageLength < 0 {
		return Env{}, fmt.Errorf("MAX_MESSAGE_LENGTH must not be negative, got %d", cfg.MaxMessageLength)
	}

	return cfg, nil
}
