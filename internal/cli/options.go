// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqwin/internal/clibase"
	"seqwin/internal/cliutil"
	"seqwin/internal/output"
)

// Command names.
const (
	CmdIndex  = "index"
	CmdRead   = "read"
	CmdList   = "list"
	CmdVerify = "verify"
)

// IndexOptions configures `seqwin index`.
type IndexOptions struct {
	clibase.Common
	Files     []string
	Out       string // "" = <file><suffix>; "-" = stdout
	ChunkSize int64  // 0 = from config
}

// ReadOptions configures `seqwin read`.
type ReadOptions struct {
	clibase.Common
	File   string
	Index  string // "" = <file><suffix>
	Record int
	Start  int64
	Size   int64 // < 0 = rest of the record
	Output string
	Wrap   int // < 0 = from config
}

// ListOptions configures `seqwin list`.
type ListOptions struct {
	clibase.Common
	File   string
	Index  string
	Output string
	Header bool
}

// VerifyOptions configures `seqwin verify`.
type VerifyOptions struct {
	clibase.Common
	File  string
	Index string
}

// parse runs the shared steps: split, parse, help/version short-circuit.
func parse(fs *flag.FlagSet, c *clibase.Common, argv []string) ([]string, error) {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if c.Help {
		return nil, flag.ErrHelp
	}
	return append(posArgs, fs.Args()...), nil
}

func oneFile(cmd string, pos []string) (string, error) {
	switch len(pos) {
	case 0:
		return "", fmt.Errorf("%s: a FASTA file is required", cmd)
	case 1:
		if pos[0] == "-" {
			return "", fmt.Errorf("%s: standard input cannot be memory-mapped; pass a file path", cmd)
		}
		return pos[0], nil
	default:
		return "", fmt.Errorf("%s: exactly one FASTA file expected, got %d", cmd, len(pos))
	}
}

// ParseIndex registers and parses `index` flags.
func ParseIndex(fs *flag.FlagSet, argv []string) (IndexOptions, error) {
	var o IndexOptions
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Out, "out", "", "index output path, '-' for stdout (single input only)")
	fs.StringVar(&o.Out, "o", "", "alias of --out")
	fs.Int64Var(&o.ChunkSize, "chunk-size", 0, "bytes mapped per scan step (0 = config, 1 MiB)")
	UsageIndex(fs)

	pos, err := parse(fs, &o.Common, argv)
	if err != nil || o.Version {
		return o, err
	}
	if o.Files, err = cliutil.ExpandPositionals(pos); err != nil {
		return o, err
	}
	if len(o.Files) == 0 {
		return o, errors.New("index: at least one FASTA file is required")
	}
	if o.Out != "" && len(o.Files) > 1 {
		return o, errors.New("index: --out needs exactly one input file")
	}
	if o.ChunkSize < 0 {
		return o, errors.New("--chunk-size must be ≥ 0")
	}
	return o, nil
}

// ParseRead registers and parses `read` flags.
func ParseRead(fs *flag.FlagSet, argv []string) (ReadOptions, error) {
	var o ReadOptions
	var raw bool
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Index, "index", "", "index file (default <fasta><suffix>)")
	fs.StringVar(&o.Index, "i", "", "alias of --index")
	fs.IntVar(&o.Record, "record", -1, "record position in the index (0-based) [*]")
	fs.IntVar(&o.Record, "r", -1, "alias of --record")
	fs.Int64Var(&o.Start, "start", 0, "window start, raw bytes from the record's payload [0]")
	fs.Int64Var(&o.Size, "size", -1, "window size in sequence bytes (-1 = rest of record) [-1]")
	fs.StringVar(&o.Output, "output", output.FormatText, "output: raw | text | fasta | json [text]")
	fs.BoolVar(&raw, "raw", false, "alias of --output raw")
	fs.IntVar(&o.Wrap, "wrap", -1, "FASTA line width (0 = no wrap, -1 = config) [-1]")
	UsageRead(fs)

	pos, err := parse(fs, &o.Common, argv)
	if err != nil || o.Version {
		return o, err
	}
	if o.File, err = oneFile(CmdRead, pos); err != nil {
		return o, err
	}
	if raw {
		o.Output = output.FormatRaw
	}
	if o.Record < 0 {
		return o, errors.New("read: --record is required and must be ≥ 0")
	}
	if o.Start < 0 {
		return o, errors.New("read: --start must be ≥ 0")
	}
	switch o.Output {
	case output.FormatRaw, output.FormatText, output.FormatFASTA, output.FormatJSON:
	default:
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}
	return o, nil
}

// ParseList registers and parses `list` flags.
func ParseList(fs *flag.FlagSet, argv []string) (ListOptions, error) {
	var o ListOptions
	var noHeader bool
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Index, "index", "", "index file (default <fasta><suffix>)")
	fs.StringVar(&o.Index, "i", "", "alias of --index")
	fs.StringVar(&o.Output, "output", output.FormatText, "output: text | json | jsonl [text]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	UsageList(fs)

	pos, err := parse(fs, &o.Common, argv)
	if err != nil || o.Version {
		return o, err
	}
	o.Header = !noHeader
	// An explicit --index is enough to list; the FASTA is only needed to
	// derive the default index path.
	if len(pos) > 0 || o.Index == "" {
		if o.File, err = oneFile(CmdList, pos); err != nil {
			return o, err
		}
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}
	return o, nil
}

// ParseVerify registers and parses `verify` flags.
func ParseVerify(fs *flag.FlagSet, argv []string) (VerifyOptions, error) {
	var o VerifyOptions
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Index, "index", "", "index file (default <fasta><suffix>)")
	fs.StringVar(&o.Index, "i", "", "alias of --index")
	UsageVerify(fs)

	pos, err := parse(fs, &o.Common, argv)
	if err != nil || o.Version {
		return o, err
	}
	o.File, err = oneFile(CmdVerify, pos)
	return o, err
}

// PrintUsage writes fs's usage to out.
func PrintUsage(fs *flag.FlagSet, out io.Writer) {
	fs.SetOutput(out)
	fs.Usage()
	fs.SetOutput(io.Discard)
}
