package clock

import "testing"

func TestSystem_Monotonic(t *testing.T) {
	c := NewSystem()

	a := c.NowMillis()
	c.SleepMillis(5)
	b := c.NowMillis()

	if b < a+5 {
		t.Errorf("expected at least 5ms to pass, got %d -> %d", a, b)
	}
}

func TestSystem_SleepNonPositive(t *testing.T) {
	c := NewSystem()
	c.SleepMillis(0)
	c.SleepMillis(-10)
}

func TestManual(t *testing.T) {
	c := &Manual{}

	c.Advance(10)
	c.SleepMillis(6)
	c.SleepMillis(0)

	if c.NowMillis() != 16 {
		t.Errorf("expected 16, got %d", c.NowMillis())
	}
	if len(c.Sleeps) != 2 || c.Sleeps[0] != 6 {
		t.Errorf("expected sleeps [6 0], got %v", c.Sleeps)
	}
}
