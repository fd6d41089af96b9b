// Package errors holds the CLI exit helpers: log the failure, print a
// readable message to stderr, exit non-zero.
package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/lifeos/internal/logger"
)

// Fatal logs err, prints it to stderr, and exits with status 1.
// A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// Fatalf is Fatal with a format string.
func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
