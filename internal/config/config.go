package config

// Config holds all application configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"   validate:"required"`
	Study StudyConfig `mapstructure:"study" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// StudyConfig contains settings for extraction and study sessions.
type StudyConfig struct {
	// IDPolicy selects how extracted items are numbered: "position" or "block".
	IDPolicy string `mapstructure:"id_policy" validate:"required,oneof=position block"`
	// QuizRequireAnswer gates Advance on an answer in quiz sessions.
	QuizRequireAnswer bool `mapstructure:"quiz_require_answer"`
	// DeckRequireAnswer gates Advance on a flip in flashcard sessions.
	DeckRequireAnswer bool `mapstructure:"deck_require_answer"`
}
