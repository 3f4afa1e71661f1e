// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"

	"github.com/minimal-gui/minimalgui/internal/assets"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitAssets reports a missing asset folder or file.
	ExitAssets = 2
)

// ExitCode maps the error that ended the program to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, assets.ErrNotFound):
		return ExitAssets
	default:
		return ExitFailure
	}
}
