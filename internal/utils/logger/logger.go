// Package logger configures the global zerolog logger for the application
package logger

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// LevelForEnvironment maps an ENVIRONMENT value onto its default log level.
func LevelForEnvironment(environment string) zerolog.Level {
	switch strings.ToLower(environment) {
	case "dev", "test":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// resolveLevel applies the --debug, --trace and --info flags, in that
// precedence, over the environment's default level.
func resolveLevel(environment string, debug, trace, info bool) zerolog.Level {
	switch {
	case debug:
		return zerolog.DebugLevel
	case trace:
		return zerolog.TraceLevel
	case info:
		return zerolog.InfoLevel
	}
	return LevelForEnvironment(environment)
}

func initLogger(environment string) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	debug := flag.Bool("debug", false, "sets log level to debug")
	trace := flag.Bool("trace", false, "sets log level to trace")
	info := flag.Bool("info", false, "sets log level to info (default)")
	flag.Parse()

	environment = strings.ToLower(environment)
	if environment == "" {
		environment = "prod"
	}

	logLevel := LevelForEnvironment(environment)
	switch environment {
	case "dev", "test", "prod":
		log.Info().Str("environment", environment).Str("level", logLevel.String()).Msg("environment detected")
	default:
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}

	if *debug || *trace || *info {
		logLevel = resolveLevel(environment, *debug, *trace, *info)
		log.Info().Str("level", logLevel.String()).Msg("Level flag detected - overriding environment log level")
	}

	// Apply the log level globally
	zerolog.SetGlobalLevel(logLevel)
}

// Init initializes the logger for the given ENVIRONMENT value (see
// config.RuntimeEnvConfig) and the command line flags.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init(cfg.Environment) <- inside whichever main() function in your entrypoint
//
// Then, `go run ./cmd/normalize --debug`
func Init(environment string) {
	initLogger(environment)
}
