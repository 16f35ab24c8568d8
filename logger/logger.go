package logger

import (
	"os"

	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the process logger. LOG_LEVEL=debug switches to the
// development config.
func Init() error {
	var err error
	if os.Getenv("LOG_LEVEL") == "debug" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	return err
}

// L returns the process logger, falling back to a no-op logger if Init
// was never called (keeps tests quiet).
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
