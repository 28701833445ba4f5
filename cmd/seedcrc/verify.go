package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/kezhuw/seedcrc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) verifyCmd() *cobra.Command {
	var extract string
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Verify every record in a file sealed with seal.",
		Long: `Verify every record in a file against --poly and --seed. Each verified record
prints its index, offset, payload length and the unseeded checksum of the payload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(args[0], extract)
		},
	}
	cmd.Flags().StringVar(&extract, "extract", "",
		"Write verified payloads, concatenated, to this file.")
	return cmd
}

// runVerify verifies every record of name. With extract set, payloads are
// written to a temporary file that replaces extract only after the last
// record verifies.
func (a *app) runVerify(name, extract string) (err error) {
	f, err := a.openInput(name)
	if err != nil {
		return err
	}
	defer f.Close()

	var out *os.File
	if extract != "" {
		out, err = ioutil.TempFile(filepath.Dir(extract), "."+filepath.Base(extract)+".*")
		if err != nil {
			return errors.Wrapf(err, "while creating %s", extract)
		}
		defer func() {
			cerr := out.Close()
			if err == nil && cerr != nil {
				err = errors.Wrapf(cerr, "while closing %s", extract)
			}
			if err == nil {
				if rerr := os.Rename(out.Name(), extract); rerr != nil {
					err = errors.Wrapf(rerr, "while renaming to %s", extract)
				}
			}
			if err != nil {
				os.Remove(out.Name())
			}
		}()
	}

	r := seedcrc.NewReader(f, a.options())
	var total uint64
	for i := 0; ; i++ {
		offset := r.Offset()
		payload, err := r.Next()
		if err == io.EOF {
			a.logger.Infof("verified %d records, %s of payload", i, humanize.Bytes(total))
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "record %d of %s", i, name)
		}
		total += uint64(len(payload))
		fmt.Fprintf(a.stdout, "%d\t%d\t%d\t%08x\n", i, offset, len(payload), seedcrc.Sum(a.poly, payload, 0))
		if out != nil {
			if _, err := out.Write(payload); err != nil {
				return errors.Wrapf(err, "while writing %s", extract)
			}
		}
	}
}
