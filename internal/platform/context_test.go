package platform

import (
	"errors"
	"testing"
)

func TestContext_CloseRunsInReverse(t *testing.T) {
	var order []string
	ctx := &Context{}
	ctx.OnClose(func() error { order = append(order, "screen"); return nil })
	ctx.OnClose(func() error { order = append(order, "speaker"); return nil })
	ctx.OnClose(func() error { order = append(order, "log"); return nil })

	if err := ctx.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"log", "speaker", "screen"}
	if len(order) != len(want) {
		t.Fatalf("expected %d closers to run, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("closer %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestContext_CloseContinuesAfterError(t *testing.T) {
	ran := 0
	ctx := &Context{}
	ctx.OnClose(func() error { ran++; return nil })
	ctx.OnClose(func() error { ran++; return errors.New("device busy") })

	err := ctx.Close()
	if err == nil {
		t.Fatal("expected error from failing closer")
	}
	if ran != 2 {
		t.Errorf("expected both closers to run, got %d", ran)
	}

	// A second Close is a no-op.
	if err := ctx.Close(); err != nil {
		t.Errorf("expected nil on second Close, got %v", err)
	}
}

func TestContext_CloseNil(t *testing.T) {
	var ctx *Context
	if err := ctx.Close(); err != nil {
		t.Errorf("expected nil from closing a nil context, got %v", err)
	}
}

func TestKey_String(t *testing.T) {
	if KeyUp.String() != "up" || KeyDown.String() != "down" || KeyEscape.String() != "escape" {
		t.Error("unexpected key names")
	}
	if Key(42).String() != "unknown" {
		t.Errorf("expected unknown, got %s", Key(42).String())
	}
}
