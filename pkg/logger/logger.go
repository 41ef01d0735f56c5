package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Development gets the pretty
// console writer, everything else stays on JSON.
func Init(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		log = log.Level(zerolog.DebugLevel)
		return
	}

	log = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func Info(msg string, args ...any) {
	withFields(log.Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	withFields(log.Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	withFields(log.Error(), args).Msg(msg)
}

func Fatal(msg string, args ...any) {
	withFields(log.Fatal(), args).Msg(msg)
}

// withFields accepts loose key-value pairs and bare error values so
// call sites can stay short: Error("msg", err) and
// Info("msg", "key", value) both work.
func withFields(event *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			event = event.Err(err)
			continue
		}
		key, ok := args[i].(string)
		if ok && i+1 < len(args) {
			event = event.Interface(key, args[i+1])
			i++
			continue
		}
		event = event.Interface(fmt.Sprintf("arg%d", i), args[i])
	}
	return event
}
