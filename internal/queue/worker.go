package queue

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/lead"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

type BriefGenerator interface {
	GenerateBrief(ctx context.Context, leadID int64) (*domain.AdvisorBrief, error)
}

type WorkerConfig struct {
	Concurrency int
	Queues      map[string]int
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

func NewWorker(redis RedisConfig, cfg WorkerConfig, briefs BriefGenerator, logger *zap.Logger) *Worker {
	server := asynq.NewServer(redis.clientOpt(), asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues:      cfg.Queues,
		Logger:      logger.Sugar(),
	})
	return &Worker{
		server: server,
		mux:    NewServeMux(briefs, logger),
		logger: logger,
	}
}

func NewServeMux(briefs BriefGenerator, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAdvisorBrief, newAdvisorBriefHandler(briefs, logger))
	return mux
}

// Start runs the worker in the background.
func (w *Worker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("failed to start queue worker: %w", err)
	}
	w.logger.Info("Queue worker started")
	return nil
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
	w.logger.Info("Queue worker stopped")
}

// newAdvisorBriefHandler retries transient failures; malformed payloads,
// missing leads and a disabled briefer are not retried.
func newAdvisorBriefHandler(briefs BriefGenerator, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload AdvisorBriefPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil || payload.LeadID == 0 {
			return fmt.Errorf("invalid advisor brief payload: %w", asynq.SkipRetry)
		}

		brief, err := briefs.GenerateBrief(ctx, payload.LeadID)
		switch {
		case err == nil:
			logger.Info("Advisor brief stored",
				zap.Int64("lead_id", payload.LeadID),
				zap.Int("talking_points", len(brief.TalkingPoints)),
			)
			return nil
		case stderrors.Is(err, lead.ErrBriefsDisabled), errors.StatusOf(err) == 404:
			logger.Warn("Advisor brief skipped", zap.Int64("lead_id", payload.LeadID), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		default:
			logger.Error("Advisor brief failed", zap.Int64("lead_id", payload.LeadID), zap.Error(err))
			return err
		}
	}
}
