package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// maxLoggedCommandBytes caps how much of a command document is written to
// the debug log.
const maxLoggedCommandBytes = 512

// NewCommandMonitor returns a Mongo driver command monitor that logs through
// zerolog.
//
//   - verbose: every started/succeeded/failed command is logged at debug level
//     (noisy, meant for the "local" environment).
//   - slowThreshold: succeeded commands slower than this are logged at warn
//     level regardless of verbose. Zero disables it.
//
// It returns nil when there is nothing to log, so callers can hand the
// result straight to a wrapping monitor.
func NewCommandMonitor(logger *zerolog.Logger, verbose bool, slowThreshold time.Duration) *event.CommandMonitor {
	if !verbose && slowThreshold <= 0 {
		return nil
	}

	log := logger.With().Str("component", "mongo").Logger()

	monitor := &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			if slowThreshold > 0 && e.Duration >= slowThreshold {
				log.Warn().
					Str("command", e.CommandName).
					Int64("request_id", e.RequestID).
					Dur("duration", e.Duration).
					Dur("threshold", slowThreshold).
					Msg("slow store command")
				return
			}
			if verbose {
				log.Debug().
					Str("command", e.CommandName).
					Int64("request_id", e.RequestID).
					Dur("duration", e.Duration).
					Msg("store command succeeded")
			}
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			log.Error().
				Str("command", e.CommandName).
				Int64("request_id", e.RequestID).
				Dur("duration", e.Duration).
				Str("failure", e.Failure).
				Msg("store command failed")
		},
	}

	if verbose {
		monitor.Started = func(_ context.Context, e *event.CommandStartedEvent) {
			command := e.Command.String()
			if len(command) > maxLoggedCommandBytes {
				command = command[:maxLoggedCommandBytes] + "..."
			}
			log.Debug().
				Str("command", e.CommandName).
				Str("database", e.DatabaseName).
				Int64("request_id", e.RequestID).
				Str("body", command).
				Msg("store command started")
		}
	}

	return monitor
}
