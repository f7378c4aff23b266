package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"recycling/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info описание задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи и запускает их периодическое выполнение.
//
// Все задачи сначала выполняются один раз параллельно. Если хотя бы одна завершилась ошибкой
// или паникой, New возвращает ошибку и фоновые циклы не стартуют. Дальше каждая задача
// выполняется раз в TTL, пока не отменён ctx. Wait дожидается остановки всех циклов.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %q warmup panic: %v", task.Info(), r)
					log.Error("task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()
			log.Info("warming up task", logger.NewField("task", task.Info()))
			return task.Do(warmupCtx)
		})
	}

	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("warmup tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go worker.loop(ctx, task)
	}

	return worker, nil
}

// Wait блокируется до остановки всех периодических циклов.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	defer w.wg.Done()

	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, periodic execution disabled", logger.NewField("ttl", ttl))
		return
	}
	taskLog.Info("periodic execution started", logger.NewField("ttl", ttl))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("periodic execution stopped")
			return
		case <-ticker.C:
			w.runSafely(ctx, taskLog, task)
		}
	}
}

func (w *Worker) runSafely(ctx context.Context, taskLog logger.Logger, task Task) {
	defer func() {
		if r := recover(); r != nil {
			taskLog.Error("background task panic",
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		taskLog.Error("background task failed", logger.NewField("error", err))
	}
}
