package main

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/kezhuw/seedcrc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var polynomials = map[string]uint32{
	"ieee":       seedcrc.IEEE,
	"castagnoli": seedcrc.Castagnoli,
	"koopman":    seedcrc.Koopman,
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	verbose bool
	polyArg string
	seed    uint32

	poly   uint32
	logger seedcrc.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: seedcrc.DiscardLogger}
	root := &cobra.Command{
		Use:               "seedcrc",
		Short:             "Seeded CRC-32 checksums and checksummed records.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Trace checksum register values and sizes to stderr.")
	root.PersistentFlags().StringVar(&a.polyArg, "poly", "ieee",
		"Polynomial in reflected form: ieee, castagnoli, koopman or a number such as 0xedb88320.")
	root.PersistentFlags().Uint32Var(&a.seed, "seed", 0,
		"Seed folded into the checksum before the data. 0 means no seed.")

	root.AddCommand(a.sumCmd(), a.sealCmd(), a.verifyCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	poly, err := parsePolynomial(a.polyArg)
	if err != nil {
		return err
	}
	a.poly = poly
	if a.verbose {
		a.logger = seedcrc.WriterLogger(a.stderr, true)
	}
	return nil
}

func (a *app) options() *seedcrc.Options {
	return &seedcrc.Options{Polynomial: a.poly, Seed: a.seed, Logger: a.logger}
}

func parsePolynomial(s string) (uint32, error) {
	if poly, ok := polynomials[strings.ToLower(s)]; ok {
		return poly, nil
	}
	poly, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Errorf("invalid polynomial %q: want ieee, castagnoli, koopman or a 32-bit number", s)
	}
	return uint32(poly), nil
}

// readInput reads a named file, or stdin for "-".
func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := ioutil.ReadAll(a.stdin)
		return data, errors.Wrap(err, "while reading stdin")
	}
	data, err := ioutil.ReadFile(name)
	return data, errors.Wrapf(err, "while reading %s", name)
}

func (a *app) openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return ioutil.NopCloser(a.stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening %s", name)
	}
	return f, nil
}
