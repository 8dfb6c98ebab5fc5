package fitz

import "testing"

// Walk every try/always path through the phase transitions and check the
// terminal phase plus which blocks are allowed to run.
func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		name        string
		tryThrows   bool
		hasAlways   bool
		alwaysThrow bool
		wantPhase   int
		wantCatch   bool
	}{
		{name: "clean, no always", wantPhase: 0, wantCatch: false},
		{name: "clean, always runs", hasAlways: true, wantPhase: 1, wantCatch: false},
		{name: "try throws, no always", tryThrows: true, wantPhase: 2, wantCatch: true},
		{name: "try throws, always runs", tryThrows: true, hasAlways: true, wantPhase: 3, wantCatch: true},
		{name: "clean try, always throws", hasAlways: true, alwaysThrow: true, wantPhase: 3, wantCatch: true},
		{name: "both throw", tryThrows: true, hasAlways: true, alwaysThrow: true, wantPhase: 5, wantCatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase := 0
			if tt.tryThrows {
				phase = throwPhase(phase)
			}
			if tt.hasAlways {
				if !runsAlways(phase) {
					t.Fatalf("always block refused to run at phase %d", phase)
				}
				phase = alwaysPhase(phase)
				if tt.alwaysThrow {
					phase = throwPhase(phase)
				}
				// Re-entry is only reachable when a throw transfers control
				// back to the region head; the clean path ends at phase 1
				// without ever revisiting the always check.
				if (tt.tryThrows || tt.alwaysThrow) && runsAlways(phase) {
					t.Errorf("always block would re-enter at phase %d", phase)
				}
			}
			if phase != tt.wantPhase {
				t.Errorf("terminal phase = %d, want %d", phase, tt.wantPhase)
			}
			if runsCatch(phase) != tt.wantCatch {
				t.Errorf("runsCatch(%d) = %v, want %v", phase, runsCatch(phase), tt.wantCatch)
			}
		})
	}
}

func TestPhasePredicates(t *testing.T) {
	wantAlways := map[int]bool{0: true, 1: true, 2: true, 3: false, 5: false}
	wantCatch := map[int]bool{0: false, 1: false, 2: true, 3: true, 5: true}

	for _, phase := range []int{0, 1, 2, 3, 5} {
		if got := runsAlways(phase); got != wantAlways[phase] {
			t.Errorf("runsAlways(%d) = %v, want %v", phase, got, wantAlways[phase])
		}
		if got := runsCatch(phase); got != wantCatch[phase] {
			t.Errorf("runsCatch(%d) = %v, want %v", phase, got, wantCatch[phase])
		}
	}
}
