package scheduler

import (
	"context"
	"testing"
)

// TestScheduleBacktestInvalidCron tests cron expression validation
func TestScheduleBacktestInvalidCron(t *testing.T) {
	s := NewScheduler(nil)
	err := s.ScheduleBacktest("not a cron spec", "test", func(ctx context.Context) error { return nil })
	if err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

// TestStartWithoutJobs tests that an empty scheduler refuses to start
func TestStartWithoutJobs(t *testing.T) {
	s := NewScheduler(nil)
	if err := s.Start(); err == nil {
		t.Error("expected error when starting with no jobs")
	}
}

// TestStartStop tests the running lifecycle
func TestStartStop(t *testing.T) {
	s := NewScheduler(nil)
	if err := s.ScheduleBacktest("@weekly", "test", func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("ScheduleBacktest: %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.IsRunning() {
		t.Error("expected scheduler to be running")
	}
	if s.NextRun().IsZero() {
		t.Error("expected a next run time while running")
	}
	if err := s.Start(); err == nil {
		t.Error("expected error on double start")
	}

	s.Stop()
	if s.IsRunning() {
		t.Error("expected scheduler to be stopped")
	}
	s.Stop()
}

// TestScheduleWhileRunning tests that scheduling is rejected mid-run
func TestScheduleWhileRunning(t *testing.T) {
	s := NewScheduler(nil)
	if err := s.ScheduleBacktest("@weekly", "test", func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("ScheduleBacktest: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	if err := s.ScheduleBacktest("@daily", "late", func(ctx context.Context) error { return nil }); err == nil {
		t.Error("expected error when scheduling while running")
	}
}
