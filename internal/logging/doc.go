// Package logging provides structured logging for the handlescout CLI.
//
// It builds on log/slog with a TTY-optimized text handler that colorizes
// output when the destination supports it, a JSON handler for machine
// consumption, and a multi-handler for fanning records out to a log file.
//
// Loggers are carried in the context so probing code can log without a
// package-level dependency:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("probing", "platform", key)
//
// In tests, use ForTest so log output is attached to the test:
//
//	func TestSomething(t *testing.T) {
//	    logger := logging.ForTest(t)
//	    ...
//	}
package logging
