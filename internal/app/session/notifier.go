package session

import (
	"go.uber.org/zap"

	"taskflow/internal/core/ports"
)

// LogNotifier is the server-side stand-in for the toast layer: it records
// every notification the session emits through the structured log.
type LogNotifier struct {
	logger *zap.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info("notification", zap.String("kind", "success"), zap.String("message", message))
}

func (n *LogNotifier) Info(message string) {
	n.logger.Info("notification", zap.String("kind", "info"), zap.String("message", message))
}

func (n *LogNotifier) Error(message string) {
	n.logger.Warn("notification", zap.String("kind", "error"), zap.String("message", message))
}
