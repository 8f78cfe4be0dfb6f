// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"seqwin/internal/clibase"
)

// UsageTop prints the command overview.
func UsageTop(out io.Writer) {
	clibase.Header(out, "seqwin")
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  seqwin index  [flags] FASTA...        build <FASTA>.idx.json for each file")
	fmt.Fprintln(out, "  seqwin read   [flags] -r N FASTA      print a window of record N")
	fmt.Fprintln(out, "  seqwin list   [flags] FASTA           show the records of an index")
	fmt.Fprintln(out, "  seqwin verify [flags] FASTA           check an index against its file")
	fmt.Fprintln(out, "\nRun 'seqwin <command> -h' for command flags.")
}

func UsageIndex(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "seqwin index", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage: seqwin index [flags] FASTA...")
		fmt.Fprintln(out, "\nIndex:")
		fmt.Fprintln(out, "  -o, --out path              Index output path, '-' for stdout (one input only)")
		fmt.Fprintf(out, "      --chunk-size int        Bytes mapped per scan step (0 = config) [%s]\n", def("chunk-size"))
	})
}

func UsageRead(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "seqwin read", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage: seqwin read [flags] --record N FASTA")
		fmt.Fprintln(out, "\nWindow:")
		fmt.Fprintln(out, "  -r, --record int            Record position in the index (0-based) [*]")
		fmt.Fprintf(out, "      --start int             Window start, raw bytes from the payload offset [%s]\n", def("start"))
		fmt.Fprintf(out, "      --size int              Window size in sequence bytes (-1 = rest) [%s]\n", def("size"))
		fmt.Fprintln(out, "  -i, --index path            Index file (default <FASTA>.idx.json)")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --output string         raw | text | fasta | json [%s]\n", def("output"))
		fmt.Fprintln(out, "      --raw                   Emit exactly the window bytes")
		fmt.Fprintf(out, "      --wrap int              FASTA line width (0 = none, -1 = config) [%s]\n", def("wrap"))
		fmt.Fprintln(out, "\nNote: --start counts raw file bytes, so line breaks before it shift the")
		fmt.Fprintln(out, "window; stepping --start by returned lengths overlaps on wrapped records.")
	})
}

func UsageList(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "seqwin list", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage: seqwin list [flags] FASTA | seqwin list --index path")
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -i, --index path            Index file (default <FASTA>.idx.json)")
		fmt.Fprintf(out, "      --output string         text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
	})
}

func UsageVerify(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "seqwin verify", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage: seqwin verify [flags] FASTA")
		fmt.Fprintln(out, "\nVerify:")
		fmt.Fprintln(out, "  -i, --index path            Index file (default <FASTA>.idx.json)")
		fmt.Fprintln(out, "\nNote: verify only treats '>' at the start of a line as a record, while")
		fmt.Fprintln(out, "index treats every '>' as one; a '>' inside a line reports a mismatch even")
		fmt.Fprintln(out, "when the index is current.")
	})
}
