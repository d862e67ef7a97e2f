package schedule

import (
	"errors"
	"math"
	"testing"
	"time"
)

var day0 = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name         string
		difficulty   int
		wantInterval int
		wantErr      bool
	}{
		{name: "easiest difficulty starts with the longest interval", difficulty: 1, wantInterval: 7},
		{name: "difficulty 2 starts at three days", difficulty: 2, wantInterval: 3},
		{name: "difficulty 3 starts at one day", difficulty: 3, wantInterval: 1},
		{name: "difficulty 4 starts at one day", difficulty: 4, wantInterval: 1},
		{name: "hardest difficulty starts at one day", difficulty: 5, wantInterval: 1},
		{name: "difficulty 0 is rejected", difficulty: 0, wantErr: true},
		{name: "difficulty 6 is rejected", difficulty: 6, wantErr: true},
		{name: "negative difficulty is rejected", difficulty: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Initialize(tt.difficulty, day0)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Initialize failed: %v", err)
			}
			if state.IntervalDays != tt.wantInterval {
				t.Errorf("IntervalDays = %d, want %d", state.IntervalDays, tt.wantInterval)
			}
			if state.EaseFactor != DefaultEase {
				t.Errorf("EaseFactor = %v, want %v", state.EaseFactor, DefaultEase)
			}
			if state.Reps != 0 {
				t.Errorf("Reps = %d, want 0", state.Reps)
			}
			if !state.LastReviewed.Equal(day0) {
				t.Errorf("LastReviewed = %v, want %v", state.LastReviewed, day0)
			}
			wantNext := day0.AddDate(0, 0, tt.wantInterval)
			if !state.NextReview.Equal(wantNext) {
				t.Errorf("NextReview = %v, want %v", state.NextReview, wantNext)
			}
		})
	}
}

// Higher difficulty never yields a larger initial interval.
func TestInitializeMonotonic(t *testing.T) {
	prev := math.MaxInt
	for difficulty := 1; difficulty <= 5; difficulty++ {
		state, err := Initialize(difficulty, day0)
		if err != nil {
			t.Fatalf("Initialize(%d) failed: %v", difficulty, err)
		}
		if state.IntervalDays < 1 {
			t.Errorf("Initialize(%d).IntervalDays = %d, want >= 1", difficulty, state.IntervalDays)
		}
		if state.IntervalDays > prev {
			t.Errorf("Initialize(%d).IntervalDays = %d, larger than easier difficulty's %d", difficulty, state.IntervalDays, prev)
		}
		prev = state.IntervalDays
	}
}

func TestAdvancePass(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		quality  int
		wantReps int
		wantIvl  int
	}{
		{
			name:     "borderline pass still grows the interval",
			state:    State{Reps: 0, IntervalDays: 1, EaseFactor: DefaultEase},
			quality:  3,
			wantReps: 1,
			wantIvl:  2, // round(1 * 2.36) = 2
		},
		{
			name:     "good pass grows by the ease factor",
			state:    State{Reps: 1, IntervalDays: 4, EaseFactor: DefaultEase},
			quality:  4,
			wantReps: 2,
			wantIvl:  10, // round(4 * 2.5)
		},
		{
			name:     "perfect recall grows by the boosted ease",
			state:    State{Reps: 2, IntervalDays: 10, EaseFactor: DefaultEase},
			quality:  5,
			wantReps: 3,
			wantIvl:  26, // round(10 * 2.6)
		},
		{
			name:     "floor ease still grows by at least one day",
			state:    State{Reps: 5, IntervalDays: 1, EaseFactor: MinEase},
			quality:  3,
			wantReps: 6,
			wantIvl:  2, // round(1*1.3)=1 would stall, floor forces prev+1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Advance(tt.state, tt.quality, day0)
			if err != nil {
				t.Fatalf("Advance failed: %v", err)
			}
			if next.Reps != tt.wantReps {
				t.Errorf("Reps = %d, want %d", next.Reps, tt.wantReps)
			}
			if next.IntervalDays != tt.wantIvl {
				t.Errorf("IntervalDays = %d, want %d", next.IntervalDays, tt.wantIvl)
			}
			if next.IntervalDays <= tt.state.IntervalDays {
				t.Errorf("IntervalDays = %d, want strict growth over %d", next.IntervalDays, tt.state.IntervalDays)
			}
			if next.EaseFactor < MinEase {
				t.Errorf("EaseFactor = %v, below floor %v", next.EaseFactor, MinEase)
			}
		})
	}
}

func TestAdvanceLapse(t *testing.T) {
	state := State{Reps: 4, IntervalDays: 30, EaseFactor: DefaultEase}

	for quality := 1; quality < PassThreshold; quality++ {
		next, err := Advance(state, quality, day0)
		if err != nil {
			t.Fatalf("Advance(q=%d) failed: %v", quality, err)
		}
		if next.Reps != 0 {
			t.Errorf("q=%d: Reps = %d, want 0", quality, next.Reps)
		}
		if next.IntervalDays != LapseInterval {
			t.Errorf("q=%d: IntervalDays = %d, want lapse interval %d", quality, next.IntervalDays, LapseInterval)
		}
		if next.EaseFactor >= state.EaseFactor {
			t.Errorf("q=%d: EaseFactor = %v, want decrease from %v", quality, next.EaseFactor, state.EaseFactor)
		}
	}

	// Lower quality means a larger ease penalty
	q1, _ := Advance(state, 1, day0)
	q2, _ := Advance(state, 2, day0)
	if q1.EaseFactor >= q2.EaseFactor {
		t.Errorf("ease after q=1 (%v) should be below ease after q=2 (%v)", q1.EaseFactor, q2.EaseFactor)
	}
}

// Repeated lapses may never push the ease factor under the floor.
func TestAdvanceEaseFloor(t *testing.T) {
	state := State{Reps: 0, IntervalDays: 1, EaseFactor: DefaultEase}
	for i := 0; i < 20; i++ {
		next, err := Advance(state, 1, day0.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
		if next.EaseFactor < MinEase {
			t.Fatalf("iteration %d: EaseFactor = %v, below floor %v", i, next.EaseFactor, MinEase)
		}
		state = next
	}
	if state.EaseFactor != MinEase {
		t.Errorf("EaseFactor = %v, want clamped at %v after repeated lapses", state.EaseFactor, MinEase)
	}
}

func TestAdvanceInvalidQuality(t *testing.T) {
	state := State{Reps: 0, IntervalDays: 1, EaseFactor: DefaultEase}
	for _, quality := range []int{0, 6, -3} {
		if _, err := Advance(state, quality, day0); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Advance(q=%d): expected ErrInvalidInput, got %v", quality, err)
		}
	}
}

// NextReview == LastReviewed + IntervalDays after every transition.
func TestAdvanceDateInvariant(t *testing.T) {
	state, err := Initialize(3, day0)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	when := day0
	for i, quality := range []int{4, 5, 2, 3, 1, 5, 5} {
		when = when.AddDate(0, 0, 1)
		state, err = Advance(state, quality, when)
		if err != nil {
			t.Fatalf("step %d: Advance failed: %v", i, err)
		}
		want := state.LastReviewed.AddDate(0, 0, state.IntervalDays)
		if !state.NextReview.Equal(want) {
			t.Errorf("step %d: NextReview = %v, want LastReviewed+%dd = %v", i, state.NextReview, state.IntervalDays, want)
		}
		if !state.LastReviewed.Equal(when) {
			t.Errorf("step %d: LastReviewed = %v, want %v", i, state.LastReviewed, when)
		}
	}
}

// The worked example: initialize(3), pass with q=4, lapse with q=2.
func TestScheduleExampleSequence(t *testing.T) {
	state, err := Initialize(3, day0)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if state.IntervalDays != 1 || state.EaseFactor != 2.5 || state.Reps != 0 {
		t.Fatalf("after initialize: interval=%d ease=%v reps=%d, want 1/2.5/0",
			state.IntervalDays, state.EaseFactor, state.Reps)
	}

	state, err = Advance(state, 4, day0.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Advance(4) failed: %v", err)
	}
	if state.Reps != 1 {
		t.Errorf("after pass: Reps = %d, want 1", state.Reps)
	}
	if state.IntervalDays < 2 {
		t.Errorf("after pass: IntervalDays = %d, want >= 2", state.IntervalDays)
	}
	if state.EaseFactor < DefaultEase-1e-9 {
		t.Errorf("after pass: EaseFactor = %v, want >= %v", state.EaseFactor, DefaultEase)
	}
	easeAfterPass := state.EaseFactor

	state, err = Advance(state, 2, day0.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Advance(2) failed: %v", err)
	}
	if state.Reps != 0 {
		t.Errorf("after lapse: Reps = %d, want 0", state.Reps)
	}
	if state.IntervalDays != LapseInterval {
		t.Errorf("after lapse: IntervalDays = %d, want %d", state.IntervalDays, LapseInterval)
	}
	if state.EaseFactor >= easeAfterPass {
		t.Errorf("after lapse: EaseFactor = %v, want below %v", state.EaseFactor, easeAfterPass)
	}
	if state.EaseFactor < MinEase {
		t.Errorf("after lapse: EaseFactor = %v, below floor %v", state.EaseFactor, MinEase)
	}
}

// Advance is a pure function: same inputs, same outputs.
func TestAdvanceDeterministic(t *testing.T) {
	state := State{Reps: 2, IntervalDays: 6, EaseFactor: 2.36}
	a, err := Advance(state, 4, day0)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	b, err := Advance(state, 4, day0)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if a != b {
		t.Errorf("Advance not deterministic: %+v vs %+v", a, b)
	}
}
