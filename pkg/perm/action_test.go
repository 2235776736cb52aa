package perm

import "testing"

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{
			name:   "TwoDisjointCycles",
			action: Action{{1, 2, 3}, {4, 5}},
			want:   true,
		},
		{
			name:   "SingleTransposition",
			action: Action{{1, 2}},
			want:   true,
		},
		{
			name:   "SingleEmptyCycle",
			action: Action{{}},
			want:   true,
		},
		{
			name:   "EmptyAction",
			action: Action{},
			want:   false,
		},
		{
			name:   "NilAction",
			action: nil,
			want:   false,
		},
		{
			name:   "ZeroPoint",
			action: Action{{0, 1}, {2, 3}},
			want:   false,
		},
		{
			name:   "NegativePoint",
			action: Action{{1, -2}},
			want:   false,
		},
		{
			name:   "ZeroPointInLaterCycle",
			action: Action{{1, 2}, {3, 0}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateFormat(tt.action); got != tt.want {
				t.Errorf("ValidateFormat(%v) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestHasUniquePoints(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{
			name:   "Disjoint",
			action: Action{{1, 2, 3}, {4, 5}},
			want:   true,
		},
		{
			name:   "RepeatAcrossCycles",
			action: Action{{1, 2, 3}, {3, 4}},
			want:   false,
		},
		{
			name:   "RepeatWithinCycle",
			action: Action{{1, 2, 1}},
			want:   false,
		},
		{
			name:   "SingleEmptyCycle",
			action: Action{{}},
			want:   true,
		},
		{
			name:   "ManyEmptyCycles",
			action: Action{{}, {}, {}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasUniquePoints(tt.action); got != tt.want {
				t.Errorf("HasUniquePoints(%v) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

// Validators are pure predicates: a second call on the same value must
// agree with the first.
func TestValidatorsIdempotent(t *testing.T) {
	a := Action{{1, 2, 3}, {3, 4}}

	if first, second := ValidateFormat(a), ValidateFormat(a); first != second {
		t.Errorf("ValidateFormat repeated calls disagree: %v then %v", first, second)
	}
	if first, second := HasUniquePoints(a), HasUniquePoints(a); first != second {
		t.Errorf("HasUniquePoints repeated calls disagree: %v then %v", first, second)
	}
}
