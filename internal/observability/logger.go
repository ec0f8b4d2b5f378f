package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. Local environments get a
// human-readable console writer, everything else emits JSON lines.
func NewLogger(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "local" {
		return zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
