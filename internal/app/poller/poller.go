package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"yolo-transcript/internal/app/api/assemblyai"
	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// DefaultDelays are the one-shot check offsets after a job is submitted
var DefaultDelays = []time.Duration{20 * time.Second, 60 * time.Second, 180 * time.Second}

// StatusSource fetches provider job state
type StatusSource interface {
	GetTranscript(ctx context.Context, id string) (*assemblyai.Transcript, error)
}

// CompletionHook runs once after a row transitions to completed
type CompletionHook func(ctx context.Context, t *model.Transcription)

// Config configures the poller
type Config struct {
	Delays       []time.Duration
	CheckTimeout time.Duration
}

// job holds the armed checks of one transcription. remaining counts checks
// that have not fired yet.
type job struct {
	timers    []*time.Timer
	remaining int
}

// Poller schedules fixed-delay status checks for submitted jobs
type Poller struct {
	source  StatusSource
	store   repository.TranscriptionDAO
	logger  *zap.Logger
	metrics *metrics.Metrics
	config  Config

	hooksMu sync.RWMutex
	hooks   []CompletionHook

	mu      sync.Mutex
	jobs    map[string]*job
	stopped bool
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a poller
func New(source StatusSource, store repository.TranscriptionDAO, logger *zap.Logger, m *metrics.Metrics, config Config) *Poller {
	if len(config.Delays) == 0 {
		config.Delays = DefaultDelays
	}
	if config.CheckTimeout <= 0 {
		config.CheckTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		source:  source,
		store:   store,
		logger:  logger,
		metrics: m,
		config:  config,
		jobs:    make(map[string]*job),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// OnComplete registers a hook invoked after a successful completion
func (p *Poller) OnComplete(hook CompletionHook) {
	p.hooksMu.Lock()
	defer p.hooksMu.Unlock()
	p.hooks = append(p.hooks, hook)
}

// Schedule arms one check per configured delay
func (p *Poller) Schedule(id, transcriptID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}

	j, ok := p.jobs[id]
	if !ok {
		j = &job{}
		p.jobs[id] = j
	}
	for _, delay := range p.config.Delays {
		p.wg.Add(1)
		j.remaining++
		t := time.AfterFunc(delay, func() {
			defer p.wg.Done()
			defer p.fired(id, j)
			if _, err := p.Check(p.ctx, id, transcriptID); err != nil {
				p.logger.Warn("status check failed",
					zap.String("transcription_id", id),
					zap.String("transcript_id", transcriptID),
					zap.Error(err))
			}
		})
		j.timers = append(j.timers, t)
	}
}

// fired forgets a job once its last check has run
func (p *Poller) fired(id string, j *job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	j.remaining--
	if j.remaining <= 0 && p.jobs[id] == j {
		delete(p.jobs, id)
	}
}

// Pending returns the number of jobs with armed checks
func (p *Poller) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

// Stop disarms every pending check and waits for running ones
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.cancel()
	for id, j := range p.jobs {
		for _, t := range j.timers {
			if t.Stop() {
				p.wg.Done()
			}
		}
		delete(p.jobs, id)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Poller) disarm(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	j, ok := p.jobs[id]
	if !ok {
		return
	}
	for _, t := range j.timers {
		if t.Stop() {
			p.wg.Done()
		}
	}
	delete(p.jobs, id)
}

// Check fetches the provider job once and copies a terminal status into
// the row. It returns the provider-derived status.
func (p *Poller) Check(ctx context.Context, id, transcriptID string) (model.TranscriptionStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.CheckTimeout)
	defer cancel()

	start := time.Now()
	transcript, err := p.source.GetTranscript(ctx, transcriptID)
	p.metrics.ObserveProvider("assemblyai", "get_transcript", start)
	if err != nil {
		p.metrics.PollCheck("failed")
		return "", err
	}

	status := MapStatus(transcript.Status)
	p.metrics.PollCheck(string(status))
	if status == model.StatusProcessing {
		return status, nil
	}

	update := model.TranscriptionUpdate{Status: status}
	if status == model.StatusCompleted {
		update.TranscriptionText = transcript.Text
		update.Duration = transcript.AudioDuration
		update.QualityScore = transcript.Confidence
	} else {
		update.ErrorMessage = transcript.Error
	}

	updated, err := p.store.UpdateFromProvider(ctx, id, update)
	if err != nil {
		return status, err
	}
	p.disarm(id)
	if !updated {
		return status, nil
	}

	p.logger.Info("transcription finished",
		zap.String("transcription_id", id),
		zap.String("transcript_id", transcriptID),
		zap.String("status", string(status)))

	if removed, err := p.store.DeleteDuplicates(ctx, transcriptID, id); err != nil {
		p.logger.Warn("duplicate cleanup failed", zap.String("transcript_id", transcriptID), zap.Error(err))
	} else if removed > 0 {
		p.logger.Info("removed duplicate transcriptions", zap.String("transcript_id", transcriptID), zap.Int64("removed", removed))
	}

	if status == model.StatusCompleted {
		p.runHooks(ctx, id)
	}
	return status, nil
}

func (p *Poller) runHooks(ctx context.Context, id string) {
	p.hooksMu.RLock()
	hooks := append([]CompletionHook(nil), p.hooks...)
	p.hooksMu.RUnlock()
	if len(hooks) == 0 {
		return
	}

	t, err := p.store.GetTranscription(ctx, id)
	if err != nil {
		p.logger.Warn("load completed transcription", zap.String("transcription_id", id), zap.Error(err))
		return
	}
	for _, hook := range hooks {
		hook(ctx, t)
	}
}

// MapStatus folds provider statuses into the local status set
func MapStatus(providerStatus string) model.TranscriptionStatus {
	switch providerStatus {
	case assemblyai.StatusCompleted:
		return model.StatusCompleted
	case assemblyai.StatusError:
		return model.StatusError
	default:
		return model.StatusProcessing
	}
}
