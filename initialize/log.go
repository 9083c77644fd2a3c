package initialize

import (
	"os"

	"github.com/rs/zerolog"
)

func NewLogger() zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	return zerolog.New(cw).With().Timestamp().Logger()
}
