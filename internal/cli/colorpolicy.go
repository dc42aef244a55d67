package cli

import (
	"log/slog"

	"github.com/fatih/color"
)

// DisableColor turns colorized output off for the remainder of the
// process. It is idempotent and never re-enables color: once a run has
// disabled it, later readings of the flag leave it disabled.
func DisableColor() {
	if !color.NoColor {
		slog.Debug("colorized output disabled")
	}
	color.NoColor = true
}

// applyOutputPolicy applies the resolved no-color flag of the active
// path. The root flag and the compare subcommand flag are independent
// readings of the same process-wide policy.
func applyOutputPolicy(noColor bool) {
	if noColor {
		DisableColor()
	}
}
