package queue

import (
	"context"

	"meetease/core/config"
	"meetease/core/logger"

	"github.com/hibiken/asynq"
)

// Client enqueues background tasks onto the redis-backed queue.
type Client struct {
	inner *asynq.Client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{inner: asynq.NewClient(redisOpt(cfg))}
}

func (c *Client) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	info, err := c.inner.EnqueueContext(ctx, task, opts...)
	if err != nil {
		logger.Error("Queue:Enqueue:Error", "type", task.Type(), "error", err)
		return err
	}
	logger.Debug("Queue:Enqueued", "type", task.Type(), "id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}

// StartWorker runs an asynq server with the given handler mux in the background.
// The returned shutdown func blocks until in-flight tasks finish.
func StartWorker(cfg config.RedisConfig, mux *asynq.ServeMux) (shutdown func()) {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 5,
			"email":   3,
		},
	})

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("Queue:Worker:Run:Error", "error", err)
		}
	}()

	return srv.Shutdown
}
