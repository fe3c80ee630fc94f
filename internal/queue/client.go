package queue

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) clientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: c.Addr, Password: c.Password, DB: c.DB}
}

type Client struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewClient(cfg RedisConfig, logger *zap.Logger) *Client {
	return &Client{
		client: asynq.NewClient(cfg.clientOpt()),
		logger: logger,
	}
}

// EnqueueAdvisorBrief schedules the brief for leadID. Enqueuing the same
// lead twice while the first task is pending is a no-op.
func (c *Client) EnqueueAdvisorBrief(ctx context.Context, leadID int64) error {
	task, err := NewAdvisorBriefTask(leadID)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueConfig.AdvisorQueue),
		asynq.MaxRetry(constants.QueueConfig.MaxRetry),
		asynq.Timeout(constants.QueueConfig.AdvisorTimeout),
		asynq.TaskID(advisorBriefTaskID(leadID)),
	)
	if stderrors.Is(err, asynq.ErrTaskIDConflict) {
		c.logger.Debug("Advisor brief already queued", zap.Int64("lead_id", leadID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue advisor brief: %w", err)
	}

	c.logger.Debug("Advisor brief enqueued",
		zap.Int64("lead_id", leadID),
		zap.String("task_id", info.ID),
		zap.String("queue", info.Queue),
	)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
