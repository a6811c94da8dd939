//go:build !ebiten

package app

import "log/slog"

// Run reports that the GUI was compiled out.
func Run(*Config, *slog.Logger) error {
	return ErrGUIUnavailable
}
