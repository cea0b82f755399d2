// Package scheduler drives the periodic automation tasks: token purge,
// appointment auto-cancellation and confirmation reminders.
package scheduler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"clinica/config"
	"clinica/internal/delivery"
	"clinica/internal/domain/service"
	"clinica/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Task is one named periodic job. Exactly one of Every or RunAt is set:
// Every reruns on a fixed interval, RunAt ("HH:MM") runs once per day at that
// wall-clock time in the reference zone.
type Task struct {
	Name    string
	Every   time.Duration
	RunAt   string
	Timeout time.Duration
	Run     func(ctx context.Context) error

	running atomic.Bool
}

// Params holds dependencies for the scheduler.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	Clock      service.Clock
	Tokens     usecase.TokenUsecase
	AutoCancel usecase.AutoCancelUsecase
	Reminder   usecase.ReminderUsecase
}

type scheduler struct {
	tasks  []*Task
	clock  service.Clock
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler builds the scheduler delivery with the three automation tasks.
func NewScheduler(params Params) (delivery.Delivery, error) {
	tasks := []*Task{
		{
			Name:    "token-purge",
			Every:   params.Cfg.Tokens.PurgeInterval,
			Timeout: time.Minute,
			Run: func(ctx context.Context) error {
				_, err := params.Tokens.Purge(ctx)

				return err
			},
		},
		{
			Name:    "auto-cancel",
			Every:   params.Cfg.AutoCancel.SweepInterval,
			Timeout: params.Cfg.AutoCancel.SoftTimeout,
			Run: func(ctx context.Context) error {
				_, err := params.AutoCancel.Run(ctx)

				return err
			},
		},
		{
			Name:    "reminder",
			RunAt:   params.Cfg.Reminder.RunAt,
			Timeout: params.Cfg.Reminder.SoftTimeout,
			Run: func(ctx context.Context) error {
				_, err := params.Reminder.Run(ctx)

				return err
			},
		},
	}

	for _, task := range tasks {
		if task.RunAt == "" {
			continue
		}
		if _, _, err := parseRunAt(task.RunAt); err != nil {
			return nil, errors.Wrapf(err, "task %s has an invalid runAt", task.Name)
		}
	}

	s := &scheduler{
		tasks:  tasks,
		clock:  params.Clock,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts one loop per task and blocks until shutdown.
func (s *scheduler) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.logger.Info("Starting scheduler", slog.Int("tasks", len(s.tasks)))

	for _, task := range s.tasks {
		s.wg.Add(1)
		go func(task *Task) {
			defer s.wg.Done()
			s.loop(runCtx, task)
		}(task)
	}

	s.wg.Wait()

	return nil
}

// stop cancels every task loop and waits for in-flight cycles to drain.
func (s *scheduler) stop(_ context.Context) error {
	s.logger.Info("Shutting down scheduler")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	return nil
}

func (s *scheduler) loop(ctx context.Context, task *Task) {
	if task.RunAt != "" {
		s.dailyLoop(ctx, task)

		return
	}

	ticker := time.NewTicker(task.Every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, task)
		}
	}
}

func (s *scheduler) dailyLoop(ctx context.Context, task *Task) {
	hour, minute, _ := parseRunAt(task.RunAt)

	for {
		next := nextDailyRun(s.clock.Now(), hour, minute, s.clock.Location())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
			s.runOnce(ctx, task)
		}
	}
}

// runOnce executes a single task cycle with the single-flight guard, the soft
// deadline and panic isolation. A cycle that finds the previous one still
// running is skipped, never queued.
func (s *scheduler) runOnce(ctx context.Context, task *Task) {
	if !task.running.CompareAndSwap(false, true) {
		s.logger.Warn("Task cycle still running, skipping", slog.String("task", task.Name))

		return
	}
	defer task.running.Store(false)

	cycleCtx := ctx
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		cycleCtx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Task cycle panicked", slog.String("task", task.Name), slog.Any("panic", r))
		}
	}()

	started := s.clock.Now()
	if err := task.Run(cycleCtx); err != nil {
		s.logger.Error("Task cycle failed",
			slog.String("task", task.Name),
			slog.Duration("elapsed", s.clock.Now().Sub(started)),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Task cycle completed",
		slog.String("task", task.Name),
		slog.Duration("elapsed", s.clock.Now().Sub(started)),
	)
}

// parseRunAt parses a "HH:MM" wall-clock time.
func parseRunAt(runAt string) (hour, minute int, err error) {
	parts := strings.Split(runAt, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected HH:MM, got %q", runAt)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.Errorf("invalid hour in %q", runAt)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.Errorf("invalid minute in %q", runAt)
	}

	return hour, minute, nil
}

// nextDailyRun returns the next occurrence of hour:minute in loc strictly
// after now.
func nextDailyRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
