package game

import "testing"

func TestHandleInput(t *testing.T) {
	tests := []struct {
		name     string
		controls Controls
		startY   int
		wantY    int
		running  bool
	}{
		{"idle", Controls{}, 270, 270, true},
		{"up", Controls{Up: true}, 270, 260, true},
		{"down", Controls{Down: true}, 270, 280, true},
		{"both cancel", Controls{Up: true, Down: true}, 270, 270, true},
		{"up at top", Controls{Up: true}, 5, 0, true},
		{"down at bottom", Controls{Down: true}, 535, 540, true},
		{"quit", Controls{Quit: true}, 270, 270, false},
		{"escape while moving", Controls{Escape: true, Up: true}, 270, 260, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch()
			m.Left.Y = tt.startY

			running := HandleInput(m, tt.controls)

			if running != tt.running {
				t.Errorf("expected running=%v, got %v", tt.running, running)
			}
			if m.Left.Y != tt.wantY {
				t.Errorf("expected left paddle Y=%d, got %d", tt.wantY, m.Left.Y)
			}
		})
	}
}

func TestHandleInput_LeavesRightPaddle(t *testing.T) {
	m := NewMatch()
	before := m.Right

	HandleInput(m, Controls{Down: true})

	if m.Right != before {
		t.Errorf("right paddle moved: %+v -> %+v", before, m.Right)
	}
}
