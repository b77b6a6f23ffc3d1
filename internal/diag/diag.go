// Package diag is a minimal debug-print facility for development builds
// of the library itself. It is not part of any Collection's public
// behavior; it exists so a maintainer chasing a dispatch-ordering bug
// can flip COLIDX_DEBUG without threading a logger through test code.
package diag

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("COLIDX_DEBUG") != ""

// Enabled reports whether COLIDX_DEBUG was set at process start.
func Enabled() bool {
	return enabled
}

// Logf writes to stderr when diagnostics are enabled, and is a no-op
// otherwise.
func Logf(format string, args ...any) {
	if enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
