// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/matbench/kernel"
	"github.com/katalvlaran/matbench/matrix"
)

// Runner executes sweeps for a fixed Config and writes rows to a Sink.
// A Runner is not safe for concurrent use; kernels inside it are parallel.
type Runner struct {
	cfg   Config
	sink  Sink
	log   *slog.Logger
	timer Timer
	host  Host
}

// step is one column of a row: a kernel and the parameters it runs with.
type step struct {
	column    string
	kern      kernel.Kernel
	params    kernel.Params
	reference bool // column reuses the reference measurement
}

// New validates cfg and returns a Runner writing to sink.
//
// Errors:
//   - ErrNilSink when sink is nil.
//   - ErrBadConfig (wrapped) when cfg.Validate fails.
func New(cfg Config, sink Sink, opts ...Option) (*Runner, error) {
	if sink == nil {
		return nil, benchErrorf("New", ErrNilSink)
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, benchErrorf("New", err)
	}
	o := gatherOptions(opts...)

	return &Runner{cfg: cfg, sink: sink, log: o.logger, timer: o.timer, host: o.host}, nil
}

// Config returns the normalized configuration the Runner sweeps.
func (r *Runner) Config() Config { return r.cfg }

// RunAll runs every category in order and stops at the first error.
func (r *Runner) RunAll() error {
	r.log.Info("sweep start", slog.Any("host", r.host), slog.Any("sizes", r.cfg.Sizes))
	for _, cat := range Categories() {
		if err := r.RunCategory(cat); err != nil {
			return err
		}
	}
	r.log.Info("sweep done")
	return nil
}

// RunCategory sweeps cat over every configured size.
//
// Implementation:
//   - Stage 1: per size, fill A (seed) and B (seed+1) once.
//   - Stage 2: run the category's reference kernel once; its output is the
//     oracle for every candidate at this size.
//   - Stage 3: per configuration, run each candidate into a fresh zeroed
//     output, Compare it, compute speedup, and hand the Row to the Sink.
//
// A candidate that fails validation is logged and recorded in its
// KernelResult; the sweep continues. Sink and allocation errors stop it.
func (r *Runner) RunCategory(cat Category) error {
	if !cat.Valid() {
		return benchErrorf("RunCategory", fmt.Errorf("%v: %w", cat, ErrUnknownCategory))
	}
	r.log.Info("category start", slog.String("category", cat.String()))

	for _, size := range r.cfg.Sizes {
		if err := r.runSize(cat, size); err != nil {
			return benchErrorf("RunCategory", fmt.Errorf("%s size=%d: %w", cat, size, err))
		}
	}
	return nil
}

// RunOne measures a single configuration of cat and writes its row. Axes of
// p that cat does not use are ignored. For the scaling categories p.Threads,
// when positive, caps the thread count of every P<t>T column; the columns
// themselves always follow Config.ScalingThreads.
func (r *Runner) RunOne(cat Category, size int, p kernel.Params) (Row, error) {
	if !cat.Valid() {
		return Row{}, benchErrorf("RunOne", fmt.Errorf("%v: %w", cat, ErrUnknownCategory))
	}
	if size <= 0 {
		return Row{}, benchErrorf("RunOne", fmt.Errorf("%w: size %d", ErrBadConfig, size))
	}
	a, b, err := r.operands(size)
	if err != nil {
		return Row{}, benchErrorf("RunOne", err)
	}
	defer a.Destroy()
	defer b.Destroy()

	ref, refElapsed, err := r.invoke(r.reference(cat), a, b, kernel.Params{})
	if err != nil {
		return Row{}, benchErrorf("RunOne", err)
	}
	defer ref.Destroy()

	row, err := r.measureRow(cat, size, p, a, b, ref, refElapsed)
	if err != nil {
		return Row{}, benchErrorf("RunOne", err)
	}
	if err = r.emit(row); err != nil {
		return Row{}, benchErrorf("RunOne", err)
	}
	return row, nil
}

func (r *Runner) runSize(cat Category, size int) error {
	a, b, err := r.operands(size)
	if err != nil {
		return err
	}
	defer a.Destroy()
	defer b.Destroy()

	ref, refElapsed, err := r.invoke(r.reference(cat), a, b, kernel.Params{})
	if err != nil {
		return err
	}
	defer ref.Destroy()

	for _, p := range r.configurations(cat) {
		row, err := r.measureRow(cat, size, p, a, b, ref, refElapsed)
		if err != nil {
			return err
		}
		if err = r.emit(row); err != nil {
			return err
		}
	}
	return nil
}

// operands allocates and fills A with Seed and B with Seed+1.
func (r *Runner) operands(size int) (*matrix.Dense, *matrix.Dense, error) {
	a, err := matrix.NewSquare(size)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.NewSquare(size)
	if err != nil {
		return nil, nil, err
	}
	opts := r.cfg.matrixOptions()
	a.FillRandom(r.cfg.Seed, opts...)
	b.FillRandom(r.cfg.Seed+1, opts...)
	return a, b, nil
}

// invoke runs k into a fresh zeroed output and times it.
func (r *Runner) invoke(k kernel.Kernel, a, b *matrix.Dense, p kernel.Params) (*matrix.Dense, time.Duration, error) {
	out, err := matrix.NewSquare(a.Size())
	if err != nil {
		return nil, 0, err
	}
	if err = matrix.ValidateSameSize(a, b, out); err != nil {
		out.Destroy()
		return nil, 0, err
	}
	elapsed := r.timer(func() { k.Multiply(a, b, out, p) })

	r.log.Debug("kernel",
		slog.String("algorithm", k.Algorithm().String()),
		slog.String("mode", k.Mode().String()),
		slog.Int("size", a.Size()),
		slog.Int("threads", p.Threads),
		slog.Int("chunk", p.Chunk),
		slog.Int("block", p.Block),
		slog.Duration("elapsed", elapsed),
	)
	return out, elapsed, nil
}

func (r *Runner) measureRow(cat Category, size int, p kernel.Params, a, b, ref *matrix.Dense, refElapsed time.Duration) (Row, error) {
	row := Row{
		Category:  cat,
		Size:      size,
		Threads:   p.Threads,
		Chunk:     p.Chunk,
		Block:     p.Block,
		Reference: refElapsed,
	}
	for _, s := range r.steps(cat, p) {
		res := KernelResult{
			Column:    s.column,
			Algorithm: s.kern.Algorithm(),
			Mode:      s.kern.Mode(),
			Params:    s.params,
		}
		if s.reference {
			res.Elapsed = refElapsed
			res.Outcome = matrix.Outcome{Pass: true}
		} else {
			out, elapsed, err := r.invoke(s.kern, a, b, s.params)
			if err != nil {
				return Row{}, err
			}
			res.Elapsed = elapsed
			res.Outcome, err = matrix.Compare(ref, out, matrix.WithEpsilon(r.cfg.Epsilon))
			out.Destroy()
			if err != nil {
				return Row{}, err
			}
		}
		res.Speedup = Speedup(refElapsed, res.Elapsed)

		if !res.Outcome.Pass {
			r.log.Warn("validation failed",
				slog.String("category", cat.String()),
				slog.String("column", res.Column),
				slog.Int("size", size),
				slog.Float64("max_diff", res.Outcome.MaxDiff),
				slog.Float64("epsilon", r.cfg.Epsilon),
			)
		}
		row.Results = append(row.Results, res)
	}
	return row, nil
}

func (r *Runner) emit(row Row) error {
	if err := r.sink.Write(row); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	r.log.Info("row",
		slog.String("category", row.Category.String()),
		slog.Any("keys", row.Keys()),
		slog.Any("speedup", row.Speedups()),
		slog.Bool("valid", row.Valid()),
	)
	return nil
}

// reference returns the kernel whose output and time every other column of
// cat is measured against.
func (r *Runner) reference(cat Category) kernel.Kernel {
	switch cat {
	case ScalingImproved, Tiled:
		return kernel.MustLookup(kernel.AlgIKJ, kernel.Serial)
	default:
		return kernel.MustLookup(kernel.AlgIJK, kernel.Serial)
	}
}

// configurations enumerates the non-size axes cat sweeps.
func (r *Runner) configurations(cat Category) []kernel.Params {
	switch cat {
	case ParallelPermutations:
		return lo.FlatMap(r.cfg.Threads, func(t int, _ int) []kernel.Params {
			return lo.Map(r.cfg.Chunks, func(c int, _ int) kernel.Params {
				return kernel.Params{Threads: t, Chunk: c}
			})
		})
	case ScalingClassic, ScalingImproved:
		return lo.Map(r.cfg.Chunks, func(c int, _ int) kernel.Params {
			return kernel.Params{Chunk: c}
		})
	case Tiled:
		return lo.FlatMap(r.cfg.Threads, func(t int, _ int) []kernel.Params {
			return lo.Map(r.cfg.Blocks, func(bs int, _ int) kernel.Params {
				return kernel.Params{Threads: t, Block: bs}
			})
		})
	default:
		return []kernel.Params{{}}
	}
}

// steps lists the columns of cat's table for configuration p.
func (r *Runner) steps(cat Category, p kernel.Params) []step {
	switch cat {
	case SerialPermutations:
		return lo.Map(kernel.LoopOrders(), func(alg kernel.Algorithm, _ int) step {
			return step{
				column:    alg.String(),
				kern:      kernel.MustLookup(alg, kernel.Serial),
				reference: alg == kernel.AlgIJK,
			}
		})

	case ParallelPermutations:
		return lo.Map(kernel.LoopOrders(), func(alg kernel.Algorithm, _ int) step {
			return step{
				column: alg.String(),
				kern:   kernel.MustLookup(alg, kernel.Parallel),
				params: kernel.Params{Threads: p.Threads, Chunk: p.Chunk},
			}
		})

	case ScalingClassic, ScalingImproved:
		alg := kernel.AlgIJK
		if cat == ScalingImproved {
			alg = kernel.AlgIKJ
		}
		out := []step{{column: "SERIAL_BASELINE", kern: kernel.MustLookup(alg, kernel.Serial), reference: true}}
		// The column set is fixed by ScalingThreads; p.Threads > 0 only caps
		// the worker count each column runs with.
		return append(out, lo.Map(r.cfg.ScalingThreads, func(t int, _ int) step {
			threads := t
			if p.Threads > 0 {
				threads = min(t, p.Threads)
			}
			return step{
				column: fmt.Sprintf("P%dT", t),
				kern:   kernel.MustLookup(alg, kernel.Parallel),
				params: kernel.Params{Threads: threads, Chunk: p.Chunk},
			}
		})...)

	case Tiled:
		return []step{
			{column: "SERIAL_IKJ", kern: kernel.MustLookup(kernel.AlgIKJ, kernel.Serial), reference: true},
			{column: "PARALLEL_IKJ", kern: kernel.MustLookup(kernel.AlgIKJ, kernel.Parallel),
				params: kernel.Params{Threads: p.Threads}},
			{column: "SERIAL_TILED", kern: kernel.MustLookup(kernel.AlgTiled, kernel.Serial),
				params: kernel.Params{Block: p.Block}},
			{column: "PARALLEL_TILED", kern: kernel.MustLookup(kernel.AlgTiled, kernel.Parallel),
				params: kernel.Params{Threads: p.Threads, Block: p.Block}},
			{column: "PARALLEL_TILED_TASKS", kern: kernel.MustLookup(kernel.AlgTiledTasks, kernel.Parallel),
				params: kernel.Params{Threads: p.Threads, Block: p.Block}},
		}
	default:
		return nil
	}
}
