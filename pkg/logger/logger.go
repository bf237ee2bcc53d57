package logger

import (
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init собирает логгер и ставит его глобальным, чтобы log.* из пакетов
// писали туда же. out == nil - stdout.
func Init(debug bool, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "lvl"
	zerolog.CallerFieldName = "call"
	zerolog.CallerMarshalFunc = func(_ uintptr, filename string, line int) string {
		for i := len(filename) - 1; i > 0; i-- {
			if filename[i] == '/' {
				filename = filename[i+1:]
				break
			}
		}
		return filename + ":" + strconv.Itoa(line)
	}

	var zlog zerolog.Logger
	if debug {
		zlog = zerolog.New(zerolog.ConsoleWriter{Out: out}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	} else {
		zlog = zerolog.New(out).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Logger()
	}

	log.Logger = zlog
	return zlog
}
