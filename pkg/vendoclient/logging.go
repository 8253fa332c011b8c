package vendoclient

import (
	"github.com/rs/zerolog"

	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// zerologLogger adapts a zerolog.Logger to vendo.Logger.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps a zerolog.Logger for use as the client's structured
// logger.
func NewZerologLogger(log zerolog.Logger) vendo.Logger {
	return &zerologLogger{log: log}
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}
