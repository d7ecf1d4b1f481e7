// Package output picks terminal color profiles for the writers tsrun prints to.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for w. Writers that are not terminals get plain text.
// NO_COLOR and CLICOLOR=0 disable colors, and CLICOLOR_FORCE enables them for any writer.
func Profile(w io.Writer) termenv.Profile {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// New creates the styled output used by the log handler. Styles are always rendered for
// the profile of w, so a forced profile also applies to files and pipes.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(Profile(w)),
		termenv.WithTTY(true),
	)
	return termenv.NewOutput(w, opts...)
}
