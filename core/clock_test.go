package core

import (
	"testing"
	"time"
)

func TestClockUpdateBeforeStart(t *testing.T) {
	c := NewClock()
	c.Update()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed = %v on a non-started clock, want 0", c.Elapsed())
	}
}

func TestClockElapsed(t *testing.T) {
	c := NewClock()
	c.Start()
	time.Sleep(time.Millisecond)
	c.Update()

	if c.Elapsed() < 0.001 {
		t.Errorf("Elapsed = %v seconds after sleeping 1ms, want >= 0.001", c.Elapsed())
	}
	if c.Elapsed() > 60 {
		t.Errorf("Elapsed = %v seconds, clock is not counting in seconds", c.Elapsed())
	}
}

func TestClockStopFreezesElapsed(t *testing.T) {
	c := NewClock()
	c.Start()
	time.Sleep(time.Millisecond)
	c.Update()
	frozen := c.Elapsed()

	c.Stop()
	c.Update()
	if c.Elapsed() != frozen {
		t.Errorf("Elapsed moved after Stop: %v, want %v", c.Elapsed(), frozen)
	}
}

func TestClockRestartResets(t *testing.T) {
	c := NewClock()
	c.Start()
	time.Sleep(time.Millisecond)
	c.Update()

	c.Start()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed = %v after restart, want 0", c.Elapsed())
	}
}
