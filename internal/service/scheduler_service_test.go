package service

import (
	"testing"
	"time"
)

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	scheduler := NewSchedulerService(time.UTC)
	for _, interval := range []time.Duration{0, -time.Minute} {
		if _, err := scheduler.ScheduleInterval(interval, func() {}); err == nil {
			t.Errorf("ScheduleInterval(%s) succeeded", interval)
		}
	}
	if scheduler.entries() != 0 {
		t.Errorf("entries = %d, want 0", scheduler.entries())
	}
}

func TestScheduleIntervalRegistersJob(t *testing.T) {
	scheduler := NewSchedulerService(time.UTC)
	for _, interval := range []time.Duration{time.Minute, 300 * time.Millisecond} {
		if _, err := scheduler.ScheduleInterval(interval, func() {}); err != nil {
			t.Fatalf("ScheduleInterval(%s): %v", interval, err)
		}
	}
	if scheduler.entries() != 2 {
		t.Errorf("entries = %d, want 2", scheduler.entries())
	}
	scheduler.Start()
	scheduler.Stop()
}
