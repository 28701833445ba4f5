package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kezhuw/seedcrc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var compressions = map[string]seedcrc.CompressionType{
	"none":   seedcrc.NoCompression,
	"snappy": seedcrc.SnappyCompression,
	"zstd":   seedcrc.ZstdCompression,
}

func (a *app) sealCmd() *cobra.Command {
	var compression string
	var appendMode bool
	cmd := &cobra.Command{
		Use:   "seal <input> <output>",
		Short: "Write the input as one checksummed record.",
		Long: `Write the input as one record tagged with a checksum under --poly and --seed.
Only a reader using the same polynomial and seed verifies the record.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, ok := compressions[compression]
			if !ok {
				return errors.Errorf("unknown compression %q: want none, snappy or zstd", compression)
			}
			return a.runSeal(args[0], args[1], typ, appendMode)
		},
	}
	cmd.Flags().StringVar(&compression, "compression", "none",
		"Payload compression: none, snappy or zstd.")
	cmd.Flags().BoolVar(&appendMode, "append", false,
		"Append the record to output instead of truncating it.")
	return cmd
}

func (a *app) runSeal(input, output string, typ seedcrc.CompressionType, appendMode bool) error {
	data, err := a.readInput(input)
	if err != nil {
		return err
	}
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(output, flag, 0644)
	if err != nil {
		return errors.Wrapf(err, "while opening %s", output)
	}
	opts := a.options()
	opts.Compression = typ
	w := seedcrc.NewWriter(f, opts)
	if err := w.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "while sealing %s", input)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "while closing %s", output)
	}
	a.logger.Infof("sealed %s of %s into %s bytes of %s",
		humanize.Bytes(uint64(len(data))), input, humanize.Comma(w.Offset()), output)
	return nil
}
