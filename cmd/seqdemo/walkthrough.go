package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/arraykit/sequence"
)

// walkthrough prints one "name: result" line per kernel operation.
// The first write error is kept and further output is dropped.
type walkthrough struct {
	out      io.Writer
	logger   zerolog.Logger
	writeErr error
}

func (w *walkthrough) run(cfg config) {
	w.line("values", "%v", cfg.values)

	hi, err := sequence.Max(cfg.values)
	w.result("max", err, "%d", hi)

	lo, err := sequence.Min(cfg.values)
	w.result("min", err, "%d", lo)

	w.line("sum", "%d", sequence.Sum(cfg.values))

	avg, err := sequence.Average(cfg.values)
	w.result("average", err, "%.4f", avg)

	w.line(fmt.Sprintf("contains(%d)", cfg.target), "%t", sequence.Contains(cfg.values, cfg.target))

	sorted := sequence.Clone(cfg.values)
	idx := sequence.SortedIndexOf(sorted, cfg.target)
	w.line(fmt.Sprintf("sortedIndexOf(%d)", cfg.target), "%d in %v", idx, sorted)

	w.line("reverse", "%v", sequence.ReverseInPlace(sequence.Clone(cfg.values)))

	w.line("concatenate", "%v", sequence.Concatenate(cfg.values, cfg.other))

	ins, err := sequence.InsertAt(cfg.values, cfg.index, cfg.element)
	w.result(fmt.Sprintf("insertAt(%d, %d)", cfg.index, cfg.element), err, "%v", ins)

	rem, err := sequence.RemoveAt(cfg.values, cfg.index)
	w.result(fmt.Sprintf("removeAt(%d)", cfg.index), err, "%v", rem)

	w.line(fmt.Sprintf("fill(%d)", cfg.fill), "%v", sequence.Fill(sequence.Clone(cfg.values), cfg.fill))

	w.line("equal(values, other)", "%t", sequence.Equal(cfg.values, cfg.other))
}

// result prints either the formatted value or the kernel error for name.
func (w *walkthrough) result(name string, err error, format string, args ...any) {
	if err != nil {
		w.logger.Warn().Err(err).Str("op", name).Msg("operation failed")
		w.printf("%s: error: %v\n", name, err)
		return
	}
	w.line(name, format, args...)
}

func (w *walkthrough) line(name, format string, args ...any) {
	value := fmt.Sprintf(format, args...)
	w.logger.Debug().Str("op", name).Str("result", value).Msg("operation done")
	w.printf("%s: %s\n", name, value)
}

func (w *walkthrough) printf(format string, args ...any) {
	if w.writeErr != nil {
		return
	}
	_, w.writeErr = fmt.Fprintf(w.out, format, args...)
}
