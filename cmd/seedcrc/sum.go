package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/kezhuw/seedcrc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type sumFlags struct {
	size    int64
	decimal bool
}

func (a *app) sumCmd() *cobra.Command {
	var flags sumFlags
	cmd := &cobra.Command{
		Use:   "sum [files...]",
		Short: "Print the checksum of each file, or of stdin.",
		Long: `Print the checksum of each file, or of stdin when no file or "-" is given.
Each line holds the checksum and the input name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSum(args, &flags)
		},
	}
	cmd.Flags().Int64Var(&flags.size, "size", -1,
		"Checksum only the first size bytes of each input. -1 checksums everything.")
	cmd.Flags().BoolVar(&flags.decimal, "decimal", false,
		"Print checksums as unsigned decimal instead of hex.")
	return cmd
}

func (a *app) runSum(args []string, flags *sumFlags) error {
	switch {
	case flags.size < -1:
		return errors.Errorf("invalid size %d: want -1 or a byte count", flags.size)
	case flags.size > math.MaxUint32:
		return errors.Errorf("size %d overflows 32 bits", flags.size)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	engine := seedcrc.NewEngine(a.options())
	for _, name := range args {
		data, err := a.readInput(name)
		if err != nil {
			return err
		}
		size := uint64(len(data))
		var sum uint32
		if flags.size >= 0 {
			size = uint64(flags.size)
			if sum, err = engine.Checksum(data, uint32(flags.size)); err != nil {
				return errors.Wrapf(err, "checksum %s", name)
			}
		} else {
			sum = engine.Sum(data)
		}
		a.logger.Infof("checksummed %s of %s with polynomial %#08x seed %d",
			humanize.Bytes(size), name, a.poly, a.seed)
		if flags.decimal {
			fmt.Fprintf(a.stdout, "%d  %s\n", sum, name)
		} else {
			fmt.Fprintf(a.stdout, "%08x  %s\n", sum, name)
		}
	}
	return nil
}
