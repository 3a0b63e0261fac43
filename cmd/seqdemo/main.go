// seqdemo walks a sequence through every operation of the
// arraykit/sequence kernel and prints one result line per operation.
//
// Usage:
//
//	seqdemo [--values 10,5,8,3,9,1,7] [--other 6,7,8] [--target 8]
//	        [--index 2] [--element 99] [--fill 100] [--log-level info]
//
// Kernel errors (for example an --index outside the sequence) are printed
// on the line of the operation that failed and logged at warn level; the
// walkthrough continues with the next operation. Every in-place operation
// runs on a copy, so each line starts from the original --values order.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	values   []int32
	other    []int32
	target   int32
	index    int
	element  int32
	fill     int32
	logLevel string
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("seqdemo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Int32SliceVar(&cfg.values, "values", []int32{10, 5, 8, 3, 9, 1, 7}, "input sequence")
	flagSet.Int32SliceVar(&cfg.other, "other", []int32{6, 7, 8}, "second operand for concatenate")
	flagSet.Int32Var(&cfg.target, "target", 8, "value for contains and sortedIndexOf")
	flagSet.IntVar(&cfg.index, "index", 2, "position for insertAt and removeAt")
	flagSet.Int32Var(&cfg.element, "element", 99, "value for insertAt")
	flagSet.Int32Var(&cfg.fill, "fill", 100, "value for fill")
	flagSet.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error, disabled)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", cfg.logLevel, err)
	}
	logger := zerolog.New(stderr).Level(level).With().Timestamp().Logger()

	w := &walkthrough{out: stdout, logger: logger}
	w.run(cfg)

	return w.writeErr
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `seqdemo: run every sequence kernel operation on one input.

Usage:
  seqdemo [flags]

Flags:
%s`, flagSet.FlagUsages())
}
