package reconcile

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/progress"
	"yolo-transcript/internal/app/repository"
)

// Checker runs one provider status check for a job
type Checker interface {
	Check(ctx context.Context, id, transcriptID string) (model.TranscriptionStatus, error)
}

// Result tallies one reconcile run
type Result struct {
	Scanned   int
	Completed int
	Failed    int
	Pending   int
	Errors    int
}

// Reconciler re-checks rows left processing, typically after a restart
// dropped their scheduled checks
type Reconciler struct {
	store    repository.TranscriptionDAO
	checker  Checker
	progress *progress.Manager
	logger   *zap.Logger
}

// New creates a Reconciler. pm may be nil.
func New(store repository.TranscriptionDAO, checker Checker, pm *progress.Manager, logger *zap.Logger) *Reconciler {
	if pm == nil {
		pm = progress.NewManager(progress.Config{Enabled: false})
	}
	return &Reconciler{store: store, checker: checker, progress: pm, logger: logger}
}

// Run checks up to limit processing rows with at most parallel checks in flight
func (r *Reconciler) Run(ctx context.Context, limit, parallel int) (Result, error) {
	rows, err := r.store.ListProcessing(ctx, limit)
	if err != nil {
		return Result{}, err
	}
	result := Result{Scanned: len(rows)}
	if len(rows) == 0 {
		return result, nil
	}
	if parallel < 1 {
		parallel = 1
	}

	bar := r.progress.NewBar(len(rows), "Reconciling", "jobs")
	defer r.progress.Wait()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, parallel)
	)

	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(row model.Transcription) {
			defer wg.Done()
			defer bar.Increment()

			sem <- struct{}{}
			status, err := r.checker.Check(ctx, row.ID, row.TranscriptID)
			<-sem

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors++
				r.logger.Warn("reconcile check failed",
					zap.String("transcription_id", row.ID),
					zap.String("transcript_id", row.TranscriptID),
					zap.Error(err))
				return
			}
			switch status {
			case model.StatusCompleted:
				result.Completed++
			case model.StatusError:
				result.Failed++
			default:
				result.Pending++
			}
		}(row)
	}
	wg.Wait()
	bar.Complete()

	r.logger.Info("reconcile finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("completed", result.Completed),
		zap.Int("failed", result.Failed),
		zap.Int("pending", result.Pending),
		zap.Int("errors", result.Errors))
	return result, ctx.Err()
}
