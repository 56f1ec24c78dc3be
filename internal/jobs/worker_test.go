package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, done <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal(msg)
	}
}

func TestEnqueueRunsJobOnPool(t *testing.T) {
	w := NewWorker(2)
	defer w.Shutdown()

	done := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		close(done)
		return nil
	})

	waitFor(t, done, "queued job never ran")
}

func TestEnqueueAfterShutdownDropsJob(t *testing.T) {
	w := NewWorker(1)
	w.Shutdown()

	ran := make(chan struct{})
	// Must not panic and must not run the job.
	w.Enqueue(func(ctx context.Context) error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
		t.Fatal("job ran after shutdown")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScheduleEveryImmediateRunsAtStartup(t *testing.T) {
	w := NewWorker(1)
	defer w.Shutdown()

	done := make(chan struct{})
	w.ScheduleEveryImmediate(time.Hour, func(ctx context.Context) error {
		close(done)
		return nil
	})

	// The hour-long interval has not elapsed; only the immediate dispatch
	// can have fired.
	waitFor(t, done, "immediate run never happened")
}

func TestStatsTrackFinishedAndFailedJobs(t *testing.T) {
	w := NewWorker(1)
	defer w.Shutdown()

	okDone := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		close(okDone)
		return nil
	})
	waitFor(t, okDone, "job never ran")

	failDone := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		close(failDone)
		return assert.AnError
	})
	waitFor(t, failDone, "failing job never ran")

	// The stat update happens after the job body returns; poll briefly.
	deadline := time.Now().Add(5 * time.Second)
	for {
		stats := w.GetStats()
		if stats.FinishedJobs >= 2 && stats.FailedJobs == 1 {
			assert.Equal(t, int64(2), stats.FinishedJobs)
			assert.Equal(t, int64(1), stats.FailedJobs)
			return
		}
		require.True(t, time.Now().Before(deadline), "stats never settled: %+v", stats)
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRunJobRecoversFromPanic(t *testing.T) {
	w := NewWorker(1)
	defer w.Shutdown()

	done := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		defer close(done)
		panic("boom")
	})
	waitFor(t, done, "panicking job never ran")

	after := make(chan struct{})
	w.Enqueue(func(ctx context.Context) error {
		close(after)
		return nil
	})
	waitFor(t, after, "worker died after panic")
}
