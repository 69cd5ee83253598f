package refiner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/config"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// Job describes one (image, mask) pair to refine.
type Job struct {
	ImagePath  string
	MaskPath   string
	OutputPath string // refined mask destination; empty skips saving
}

// JobResult is the outcome of one refinement job.
type JobResult struct {
	Job    Job
	Report *Report
	Err    error
}

// RefineAll processes independent jobs concurrently. Each job works on its
// own mask, image, and intermediate buffers, so no synchronization beyond the
// worker bound is needed. Results come back in input order; per-job failures
// are recorded in the result rather than aborting the batch.
func RefineAll(ctx context.Context, jobs []Job, cfg *config.Config) []JobResult {
	workers := cfg.Batch.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]JobResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = JobResult{Job: job, Err: err}
				return nil
			}
			results[i] = runJob(job, cfg)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in results
	return results
}

// runJob loads one pair, refines it, and optionally saves the output mask.
func runJob(job Job, cfg *config.Config) JobResult {
	img, _, err := utils.LoadImage(job.ImagePath)
	if err != nil {
		return JobResult{Job: job, Err: fmt.Errorf("load image %s: %w", job.ImagePath, err)}
	}
	m, err := mask.Load(job.MaskPath)
	if err != nil {
		return JobResult{Job: job, Err: fmt.Errorf("load mask %s: %w", job.MaskPath, err)}
	}

	refined, report, err := RefineWithReport(m, img, cfg)
	if err != nil {
		return JobResult{Job: job, Err: fmt.Errorf("refine %s: %w", job.MaskPath, err)}
	}
	if job.OutputPath != "" {
		if err := refined.Save(job.OutputPath); err != nil {
			return JobResult{Job: job, Err: err}
		}
		slog.Debug("saved refined mask", "path", job.OutputPath)
	}
	return JobResult{Job: job, Report: report}
}
