package core

import (
	"context"
	"sync"

	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/schema"
)

// Job pairs a loaded dataset with the indicator to evaluate on it.
type Job struct {
	Source    string
	Table     dataset.Table
	Indicator Indicator
	Variant   schema.Variant
}

// JobResult holds the outcome of one Job. Err is a *ValidationError when
// the table was rejected, or the context error when the batch was cancelled.
type JobResult struct {
	Job
	Scores  Scores
	Classes Classes
	Err     error
}

// Evaluate calculates and classifies a single job.
func Evaluate(job Job) JobResult {
	res := JobResult{Job: job}
	scores, err := job.Indicator.Calculate(job.Table)
	if err != nil {
		res.Err = err
		return res
	}
	classes, err := job.Indicator.Classify(scores, job.Variant)
	if err != nil {
		res.Err = err
		return res
	}
	res.Scores = scores
	res.Classes = classes
	return res
}

// RunBatch evaluates jobs on a pool of workers. Results are in job order.
// Jobs not started before ctx is cancelled carry the context error.
func RunBatch(ctx context.Context, jobs []Job, workers int) []JobResult {
	return runPool(ctx, jobs, workers, Evaluate, func(job Job, err error) JobResult {
		return JobResult{Job: job, Err: err}
	})
}

// ValidateBatch validates jobs on a pool of workers. Reports are in job order.
func ValidateBatch(ctx context.Context, jobs []Job, workers int) []schema.ValidationReport {
	return runPool(ctx, jobs, workers, ValidateJob, func(job Job, err error) schema.ValidationReport {
		return schema.ValidationReport{
			Source:    job.Source,
			Indicator: job.Indicator.Key(),
			Name:      job.Indicator.Name(),
			Message:   err.Error(),
		}
	})
}

// ValidateJob validates the table of a job and reports the offending columns.
func ValidateJob(job Job) schema.ValidationReport {
	report := schema.ValidationReport{
		Source:    job.Source,
		Indicator: job.Indicator.Key(),
		Name:      job.Indicator.Name(),
	}
	if verr := Check(job.Table, job.Indicator.Columns().Names()); verr != nil {
		report.Message = verr.Error()
		report.Columns = verr.Columns
		return report
	}
	report.Valid = true
	report.Message = ValidMessage
	return report
}

// runPool fans jobs out to a fixed number of workers. Each worker writes to
// a unique index of the output slice.
func runPool[T any](ctx context.Context, jobs []Job, workers int, fn func(Job) T, cancelled func(Job, error) T) []T {
	out := make([]T, len(jobs))
	if workers <= 0 {
		workers = 1
	}
	idxCh := make(chan int, len(jobs))
	for i := range jobs {
		idxCh <- i
	}
	close(idxCh)

	var wg sync.WaitGroup
	for range min(workers, len(jobs)) {
		wg.Go(func() {
			for i := range idxCh {
				if err := ctx.Err(); err != nil {
					out[i] = cancelled(jobs[i], err)
					continue
				}
				out[i] = fn(jobs[i])
			}
		})
	}
	wg.Wait()
	return out
}

// BuildResult converts a job result into per-respondent output rows.
// Rows are numbered from 1.
func BuildResult(jr JobResult) schema.IndicatorResult {
	res := schema.IndicatorResult{
		Source:    jr.Source,
		Indicator: jr.Indicator.Key(),
		Name:      jr.Indicator.Name(),
		Variant:   ResolveVariant(jr.Indicator, jr.Variant),
		Rows:      jr.Table.Rows(),
	}
	if jr.Err != nil {
		res.Error = jr.Err.Error()
		return res
	}
	res.Counts = make(map[schema.Label]int)
	res.Respondents = make([]schema.RespondentResult, len(jr.Scores))
	for i, s := range jr.Scores {
		res.Counts[jr.Classes[i]]++
		res.Respondents[i] = schema.RespondentResult{
			Source:    jr.Source,
			Row:       i + 1,
			Indicator: res.Indicator,
			Variant:   res.Variant,
			Score:     s,
			Label:     jr.Classes[i],
		}
	}
	return res
}
