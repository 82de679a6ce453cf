package vop

import (
	"github.com/archvop/vopraster/internal/model"
	"github.com/archvop/vopraster/internal/parallel"
)

// ViewJob is one view's input to a MultiViewPool run: the view itself,
// its elements (already front-to-back sorted by the caller's collection
// collaborator), and its annotations.
type ViewJob struct {
	View        *model.View
	Elements    []model.Element
	Annotations []Annotation
}

// ViewOutcome pairs a ViewJob's result with any error Driver.Run
// returned for it (an unsupported view kind) or a panic recovered around
// the job; Result is the zero value when Err is non-nil. A raster-
// allocation failure is not an Err: it arrives in Result.Errors.
type ViewOutcome struct {
	Result Result
	Err    error
}

// MultiViewPool runs many views concurrently, each through its own
// Driver.Run call with its own ViewRaster, StrategyDiagnostics, and
// geometry cache — per the concurrency model, there is no mutable state
// shared across views. It reuses internal/parallel.WorkerPool as the
// underlying goroutine pool rather than spawning one goroutine per view.
type MultiViewPool struct {
	cfg  Config
	pool *parallel.WorkerPool
}

// NewMultiViewPool builds a pool bound to cfg that distributes view jobs
// across workers workers goroutines (0 or negative selects GOMAXPROCS).
func NewMultiViewPool(cfg Config, workers int) *MultiViewPool {
	return &MultiViewPool{cfg: cfg, pool: parallel.NewWorkerPool(workers)}
}

// Close releases the pool's worker goroutines. The pool must not be used
// afterward.
func (p *MultiViewPool) Close() {
	p.pool.Close()
}

// Run processes every job and returns its outcome in the same order as
// jobs, blocking until all views have completed. A panic escaping one
// job's closure is recovered so it cannot take down the other views
// running concurrently in the same batch; Driver.Run already recovers
// panics from view processing itself, so this is a second line of
// defense around the job setup that calls it.
func (p *MultiViewPool) Run(jobs []ViewJob) []ViewOutcome {
	outcomes := make([]ViewOutcome, len(jobs))
	work := make([]func(), len(jobs))
	for i, job := range jobs {
		i, job := i, job
		work[i] = func() {
			var result Result
			var err error
			if panicErr := recoverToError(func() {
				driver := NewDriver(p.cfg)
				result, err = driver.Run(job.View, job.Elements, job.Annotations)
			}); panicErr != nil {
				Logger().Warn("vop: recovered panic running view job, continuing with next job", "error", panicErr)
				err = panicErr
			}
			outcomes[i] = ViewOutcome{Result: result, Err: err}
		}
	}
	p.pool.ExecuteAll(work)
	return outcomes
}
