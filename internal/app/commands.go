// internal/app/commands.go
package app

import (
	"context"
	"fmt"
	"time"

	"seqwin/internal/cli"
	"seqwin/internal/cmdutil"
	"seqwin/internal/output"
	"seqwin/internal/runutil"
	"seqwin/internal/scanner"
	"seqwin/internal/seqindex"
	"seqwin/internal/verify"
	"seqwin/internal/window"
	"seqwin/internal/writers"
)

func (e *env) indexPath(explicit, fasta string) string {
	return runutil.IndexPath(explicit, fasta, e.cfg)
}

func runIndex(ctx context.Context, e *env, o cli.IndexOptions) error {
	chunk := runutil.ChunkSize(o.ChunkSize, e.cfg)
	n, err := cmdutil.ForEachFile(ctx, o.Files, func(path string) error {
		began := time.Now()
		idx, err := scanner.ScanFile(path, scanner.Options{
			ChunkSize: chunk,
			Progress:  cmdutil.Progress(e.logger, path),
		})
		if err != nil {
			return err
		}
		dest := e.indexPath(o.Out, path)
		if dest == "-" {
			if err := seqindex.Save(e.out, idx); err != nil {
				return err
			}
		} else if err := seqindex.SaveFile(dest, idx); err != nil {
			return err
		}
		e.logger.Info("indexed", "file", path, "records", len(idx), "bases", idx.TotalLength(),
			"index", dest, "elapsed", time.Since(began).Round(time.Millisecond))
		return nil
	})
	if n > 1 {
		e.logger.Debug("done", "files", n)
	}
	return err
}

func runRead(e *env, o cli.ReadOptions) error {
	idxPath := e.indexPath(o.Index, o.File)
	idx, err := seqindex.LoadFile(idxPath)
	if err != nil {
		return err
	}
	rec, err := idx.At(o.Record)
	if err != nil {
		return err
	}
	seq, err := window.ReadFile(o.File, rec, o.Start, o.Size)
	if err != nil {
		return err
	}
	e.logger.Debug("window", "record", o.Record, "header", rec.Header, "start", o.Start, "bytes", len(seq))

	return writers.WriteWindow(o.Output, e.out, output.Window{
		Position: o.Record,
		Record:   rec,
		Start:    o.Start,
		Seq:      seq,
		Wrap:     runutil.Wrap(o.Wrap, e.cfg),
	})
}

func runList(e *env, o cli.ListOptions) error {
	idx, err := seqindex.LoadFile(e.indexPath(o.Index, o.File))
	if err != nil {
		return err
	}
	return writers.WriteList(o.Output, e.out, idx, o.Header)
}

func runVerify(ctx context.Context, e *env, o cli.VerifyOptions) error {
	idxPath := e.indexPath(o.Index, o.File)
	idx, err := seqindex.LoadFile(idxPath)
	if err != nil {
		return err
	}
	rep, err := verify.File(ctx, o.File, idx)
	for _, m := range rep.Mismatches {
		if _, werr := fmt.Fprintln(e.out, m); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.out, "ok: %d records match %s\n", rep.Records, idxPath)
	return err
}
