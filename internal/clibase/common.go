// internal/clibase/common.go
package clibase

import (
	"flag"
)

// Common holds CLI fields shared by every seqwin command.
type Common struct {
	Config   string
	LogLevel string
	Quiet    bool
	Version  bool
	Help     bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Config, "config", "", "JSON config file with defaults")
	fs.StringVar(&c.LogLevel, "log-level", "", "debug | info | warn | error [info]")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help message")
	fs.BoolVar(&c.Help, "help", false, "show this help message")
}
