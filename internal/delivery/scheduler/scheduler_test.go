package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mockSvc "clinica/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZone = time.FixedZone("UTC-5", -5*60*60)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseRunAt(t *testing.T) {
	tests := []struct {
		name    string
		runAt   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "morning", runAt: "08:00", hour: 8, minute: 0},
		{name: "midnight", runAt: "00:00", hour: 0, minute: 0},
		{name: "last minute of the day", runAt: "23:59", hour: 23, minute: 59},
		{name: "missing colon", runAt: "0800", wantErr: true},
		{name: "hour out of range", runAt: "24:00", wantErr: true},
		{name: "minute out of range", runAt: "08:60", wantErr: true},
		{name: "not a number", runAt: "ab:cd", wantErr: true},
		{name: "empty", runAt: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseRunAt(tt.runAt)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestNextDailyRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before today's slot runs today",
			now:  time.Date(2025, 3, 10, 6, 30, 0, 0, testZone),
			want: time.Date(2025, 3, 10, 8, 0, 0, 0, testZone),
		},
		{
			name: "after today's slot rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 9, 0, 0, 0, testZone),
			want: time.Date(2025, 3, 11, 8, 0, 0, 0, testZone),
		},
		{
			// Strictly after now: landing exactly on the slot schedules the
			// next day, never an immediate re-run.
			name: "exactly on the slot rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 8, 0, 0, 0, testZone),
			want: time.Date(2025, 3, 11, 8, 0, 0, 0, testZone),
		},
		{
			name: "one second past the slot rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 8, 0, 1, 0, testZone),
			want: time.Date(2025, 3, 11, 8, 0, 0, 0, testZone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := nextDailyRun(tt.now, 8, 0, testZone)
			assert.True(t, next.Equal(tt.want), "got %v, want %v", next, tt.want)
		})
	}
}

func TestScheduler_RunOnce_SkipsWhileRunning(t *testing.T) {
	mockClock := mockSvc.NewMockClock(t)
	mockClock.EXPECT().Now().Return(time.Date(2025, 3, 10, 8, 0, 0, 0, testZone))
	s := &scheduler{clock: mockClock, logger: discardLogger()}

	started := make(chan struct{})
	release := make(chan struct{})
	var runs int
	var mu sync.Mutex

	task := &Task{
		Name: "slow-task",
		Run: func(_ context.Context) error {
			mu.Lock()
			runs++
			mu.Unlock()
			close(started)
			<-release

			return nil
		},
	}

	done := make(chan struct{})
	go func() {
		s.runOnce(context.Background(), task)
		close(done)
	}()

	<-started
	// The first cycle is still in flight; this one must be skipped, not queued.
	s.runOnce(context.Background(), task)

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, runs)
}

func TestScheduler_RunOnce_RunsAgainAfterCompletion(t *testing.T) {
	mockClock := mockSvc.NewMockClock(t)
	mockClock.EXPECT().Now().Return(time.Date(2025, 3, 10, 8, 0, 0, 0, testZone))
	s := &scheduler{clock: mockClock, logger: discardLogger()}

	var runs int
	task := &Task{
		Name: "fast-task",
		Run: func(_ context.Context) error {
			runs++

			return nil
		},
	}

	s.runOnce(context.Background(), task)
	s.runOnce(context.Background(), task)

	assert.Equal(t, 2, runs)
}

func TestScheduler_RunOnce_RecoversPanic(t *testing.T) {
	mockClock := mockSvc.NewMockClock(t)
	mockClock.EXPECT().Now().Return(time.Date(2025, 3, 10, 8, 0, 0, 0, testZone))
	s := &scheduler{clock: mockClock, logger: discardLogger()}

	task := &Task{
		Name: "panicky-task",
		Run: func(_ context.Context) error {
			panic("boom")
		},
	}

	// Must not propagate, and must release the single-flight guard.
	require.NotPanics(t, func() {
		s.runOnce(context.Background(), task)
	})
	assert.False(t, task.running.Load())
}

func TestScheduler_RunOnce_AppliesSoftDeadline(t *testing.T) {
	mockClock := mockSvc.NewMockClock(t)
	mockClock.EXPECT().Now().Return(time.Date(2025, 3, 10, 8, 0, 0, 0, testZone))
	s := &scheduler{clock: mockClock, logger: discardLogger()}

	var sawDeadline bool
	task := &Task{
		Name:    "bounded-task",
		Timeout: time.Minute,
		Run: func(ctx context.Context) error {
			_, sawDeadline = ctx.Deadline()

			return nil
		},
	}

	s.runOnce(context.Background(), task)
	assert.True(t, sawDeadline)
}
