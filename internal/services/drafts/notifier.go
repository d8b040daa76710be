package drafts

//go:generate mockgen -destination=mock/mock_notifier.go -package=mockdrafts -source=notifier.go

import (
	"github.com/rs/zerolog"
)

// Level classifies a user-facing notification
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notifier surfaces short status messages to whoever is driving the toolbox
type Notifier interface {
	Notify(level Level, message string)
}

// LogNotifier writes notifications through zerolog
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a notifier on the given logger. A nil logger
// discards everything.
func NewLogNotifier(logger *zerolog.Logger) *LogNotifier {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &LogNotifier{logger: logger.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Notify(level Level, message string) {
	var event *zerolog.Event
	switch level {
	case LevelWarning:
		event = n.logger.Warn()
	case LevelError:
		event = n.logger.Error()
	default:
		event = n.logger.Info()
	}
	event.Str("level_hint", level.String()).Msg(message)
}

// nopNotifier drops every message
type nopNotifier struct{}

func (nopNotifier) Notify(Level, string) {}
