// Package bench drives the fused-vs-naive evaluation comparison behind
// the lazybench CLI: it fills deterministic sample collections, times a
// d += a + b + c chain both as one fused pass and as one full pass per
// operator, and verifies the two agree elementwise.
package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hasbyte1/go-lazy-collections/lazy"
)

// Case kinds.
const (
	KindInts    = "ints"
	KindStrings = "strings"
)

// Sentinel errors for case validation.
var (
	// ErrUnknownKind is returned for a case kind other than "ints" or
	// "strings".
	ErrUnknownKind = errors.New("bench: unknown case kind")

	// ErrInvalidCase is returned when a case has a non-positive size or
	// run count, or no name.
	ErrInvalidCase = errors.New("bench: invalid case")
)

// Case describes one benchmark scenario.
type Case struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Size int    `yaml:"size"`
	Runs int    `yaml:"runs"`
}

// Validate checks the case is runnable.
func (c Case) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCase)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: case %q has size %d", ErrInvalidCase, c.Name, c.Size)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("%w: case %q has runs %d", ErrInvalidCase, c.Name, c.Runs)
	}
	if c.Kind != KindInts && c.Kind != KindStrings {
		return fmt.Errorf("%w: %q (case %q)", ErrUnknownKind, c.Kind, c.Name)
	}
	return nil
}

// Report holds the timing outcome for one case. Fused and Naive are the
// best (minimum) durations over the case's runs; Match records whether
// both evaluation strategies produced identical destinations.
type Report struct {
	Case  Case
	Fused time.Duration
	Naive time.Duration
	Match bool
}

// Speedup returns Naive/Fused as a ratio, or 0 when Fused is zero.
func (r Report) Speedup() float64 {
	if r.Fused <= 0 {
		return 0
	}
	return float64(r.Naive) / float64(r.Fused)
}

// Runner executes cases.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log}
}

// RunAll runs every case in cfg, stopping at the first failure.
func (r *Runner) RunAll(cfg Config) ([]Report, error) {
	reports := make([]Report, 0, len(cfg.Cases))
	for _, c := range cfg.Cases {
		rep, err := r.Run(c)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// Run validates and executes one case.
func (r *Runner) Run(c Case) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	r.log.Debug("running case", "name", c.Name, "kind", c.Kind, "size", c.Size, "runs", c.Runs)

	var (
		rep Report
		err error
	)
	switch c.Kind {
	case KindInts:
		rep, err = runInts(c)
	case KindStrings:
		rep, err = runStrings(c)
	}
	if err != nil {
		return Report{}, err
	}
	r.log.Debug("case done", "name", c.Name, "fused", rep.Fused, "naive", rep.Naive, "match", rep.Match)
	return rep, nil
}

// minDuration returns the best wall-clock duration of fn over runs.
func minDuration(runs int, fn func() error) (time.Duration, error) {
	best := time.Duration(0)
	for i := 0; i < runs; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return 0, err
		}
		if d := time.Since(start); i == 0 || d < best {
			best = d
		}
	}
	return best, nil
}

func runInts(c Case) (Report, error) {
	a := make([]int, c.Size)
	b := make([]int, c.Size)
	cc := make([]int, c.Size)
	for i := 0; i < c.Size; i++ {
		a[i], b[i], cc[i] = i+1, (i+1)*10, (i+1)*100
	}
	dFused := make([]int, c.Size)
	dNaive := make([]int, c.Size)

	wa, wb, wc := lazy.WrapSlice(a), lazy.WrapSlice(b), lazy.WrapSlice(cc)
	wd := lazy.WrapSlice(dFused)
	expr := lazy.Add[int](lazy.Add[int](wa, wb), wc)

	fused, err := minDuration(c.Runs, func() error {
		return lazy.AddAssign(wd, expr)
	})
	if err != nil {
		return Report{}, err
	}

	naive, err := minDuration(c.Runs, func() error {
		for i := 0; i < c.Size; i++ {
			dNaive[i] += a[i] + b[i] + cc[i]
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	match := true
	for i := 0; i < c.Size; i++ {
		if dFused[i] != dNaive[i] {
			match = false
			break
		}
	}
	return Report{Case: c, Fused: fused, Naive: naive, Match: match}, nil
}

func runStrings(c Case) (Report, error) {
	a := make([]string, c.Size)
	b := make([]string, c.Size)
	cc := make([]string, c.Size)
	dFused := make([]string, c.Size)
	dNaive := make([]string, c.Size)
	for i := 0; i < c.Size; i++ {
		a[i], b[i], cc[i] = "alpha ", "beta ", "gamma"
	}

	wa, wb, wc := lazy.WrapSlice(a), lazy.WrapSlice(b), lazy.WrapSlice(cc)
	wd := lazy.WrapSlice(dFused)
	expr := lazy.Add[string](lazy.Add[string](wa, wb), wc)

	fused, err := minDuration(c.Runs, func() error {
		return lazy.AddAssign(wd, expr)
	})
	if err != nil {
		return Report{}, err
	}

	naive, err := minDuration(c.Runs, func() error {
		for i := 0; i < c.Size; i++ {
			dNaive[i] += a[i] + b[i] + cc[i]
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	match := true
	for i := 0; i < c.Size; i++ {
		if dFused[i] != dNaive[i] {
			match = false
			break
		}
	}
	return Report{Case: c, Fused: fused, Naive: naive, Match: match}, nil
}
