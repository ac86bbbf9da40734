package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger that drops everything, for tests that do
// not care about log output.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
