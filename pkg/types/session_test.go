package types

import "testing"

func TestStageCanAdvance(t *testing.T) {
	tests := []struct {
		name string
		from Stage
		to   Stage
		want bool
	}{
		{"start to researched", StageStart, StageResearched, true},
		{"researched to written", StageResearched, StageWritten, true},
		{"written to rendered", StageWritten, StageRendered, true},
		{"skipping a stage", StageStart, StageWritten, false},
		{"backward", StageWritten, StageResearched, false},
		{"self transition", StageResearched, StageResearched, false},
		{"any stage may fail", StageStart, StageFailed, true},
		{"rendered may fail", StageRendered, StageFailed, true},
		{"failed is absorbing", StageFailed, StageResearched, false},
		{"failed stays failed", StageFailed, StageFailed, false},
		{"unknown stage", Stage("bogus"), StageResearched, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanAdvance(tt.to); got != tt.want {
				t.Errorf("CanAdvance(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSessionAdvance(t *testing.T) {
	s := Session{Stage: StageStart}

	s = s.Advance(StageResearched)
	if s.Stage != StageResearched {
		t.Fatalf("stage = %s, want researched", s.Stage)
	}

	// Illegal transitions leave the marker untouched.
	if got := s.Advance(StageRendered); got.Stage != StageResearched {
		t.Errorf("skipping advanced stage to %s", got.Stage)
	}
	if got := s.Advance(StageStart); got.Stage != StageResearched {
		t.Errorf("backward advanced stage to %s", got.Stage)
	}
}

func TestSessionFail(t *testing.T) {
	s := Session{Stage: StageWritten}

	s = s.Fail("generation exploded")
	if s.Stage != StageFailed {
		t.Fatalf("stage = %s, want failed", s.Stage)
	}
	if s.Err != "generation exploded" {
		t.Errorf("err = %q", s.Err)
	}

	// A later failure must not overwrite the first cause.
	s = s.Fail("render exploded")
	if s.Err != "generation exploded" {
		t.Errorf("err = %q, want original message kept", s.Err)
	}
}

func TestSessionStatus(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    string
	}{
		{"rendered is completed", Session{Stage: StageRendered}, StatusCompleted},
		{
			"degraded research still completes",
			Session{Stage: StageRendered, Research: ResearchBundle{Degraded: true}},
			StatusCompleted,
		},
		{"failed", Session{Stage: StageFailed, Err: "boom"}, StatusFailed},
		{"stopped mid-run", Session{Stage: StageWritten}, StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}
