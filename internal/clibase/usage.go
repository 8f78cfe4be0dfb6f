// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"seqwin/internal/version"
)

// Header prints the banner shared by every usage screen.
func Header(out io.Writer, name string) {
	fmt.Fprintf(out, "%s – indexed window reads from FASTA files\n\n", name)
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
}

// UsageCommon installs a shared Usage() handler on fs.
// extra prints command-specific sections (usage line, command flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		Header(out, name)
		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           JSON config with defaults (chunk_size, log_level, index_suffix, wrap)")
		fmt.Fprintln(out, "      --log-level string      Log level: debug | info | warn | error [info]")
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
