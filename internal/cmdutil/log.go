// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr logger shared by every command. level is one of
// debug|info|warn|error ("" = info); quiet raises the level to error.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if strings.TrimSpace(level) != "" {
		l, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q", level)
		}
		lvl = l
	}
	if quiet && lvl < log.ErrorLevel {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Level:  lvl,
		Prefix: "seqwin",
	}), nil
}

// Progress returns a scan progress callback that logs at debug level each
// time another tenth of the file has been scanned.
func Progress(logger *log.Logger, path string) func(scanned, total int64) {
	next := int64(1)
	return func(scanned, total int64) {
		if total <= 0 {
			return
		}
		if tenth := scanned * 10 / total; tenth >= next {
			logger.Debug("scanning", "file", path, "done", fmt.Sprintf("%d%%", tenth*10), "bytes", scanned)
			next = tenth + 1
		}
	}
}
