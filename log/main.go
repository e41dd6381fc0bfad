// Package log wires the detector's diagnostic output (the mess detector's
// per-plugin ratios, logged at trace level) through zerolog, the
// same structured-logging library the rest of this module's teacher
// dependency set uses.
package log

import (
	"fmt"
	stdLog "log"
	"os"
	"os/user"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the package-wide zerolog logger to append to a
// per-user temp file and redirects the standard library's log package
// through it, so any leftover stdlib log.Printf calls land in the same
// stream. Call it once, from cmd/normalizer's main.
func InitLogger(level zerolog.Level) {
	const defaultFileMode os.FileMode = 0600

	usr, err := user.Current()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve current user for log file path")
	}
	fileName := filepath.Join(os.TempDir(), fmt.Sprintf("normalizer-%s.log", usr.Username))
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		panic(err)
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimestampFieldName = "t"
	zerolog.LevelFieldName = "l"
	zerolog.MessageFieldName = "m"

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: file})

	stdLog.SetFlags(stdLog.Lshortfile)
	stdLog.SetOutput(log.Logger)

	stdLog.Printf("logger file init : %s", fileName)
}
