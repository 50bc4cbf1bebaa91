package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the command logger. Output goes to w so stdout stays
// reserved for results.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
	})
}
