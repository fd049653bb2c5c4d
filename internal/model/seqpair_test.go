package model

import "testing"

func TestIdentitySequencePair(t *testing.T) {
	sp := IdentitySequencePair(4)
	for i, v := range sp.P {
		if v != i {
			t.Errorf("P[%d] = %d, want %d", i, v, i)
		}
	}
	for i, v := range sp.N {
		if v != i {
			t.Errorf("N[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestSequencePairValidate(t *testing.T) {
	tests := []struct {
		name    string
		sp      SequencePair
		n       int
		wantErr bool
	}{
		{"valid", SequencePair{P: []int{0, 1, 2}, N: []int{2, 0, 1}}, 3, false},
		{"wrong length", SequencePair{P: []int{0, 1}, N: []int{0, 1}}, 3, true},
		{"duplicate", SequencePair{P: []int{0, 0, 2}, N: []int{0, 1, 2}}, 3, true},
		{"out of range", SequencePair{P: []int{0, 1, 3}, N: []int{0, 1, 2}}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sp.Validate(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSequencePairCloneIndependence(t *testing.T) {
	sp := IdentitySequencePair(3)
	clone := sp.Clone()
	clone.P[0] = 99
	if sp.P[0] == 99 {
		t.Fatal("Clone shares backing array with original")
	}
}

func TestSequencePairCopyFrom(t *testing.T) {
	sp := IdentitySequencePair(3)
	snapshot := sp.Clone()
	sp.P[0], sp.P[1] = sp.P[1], sp.P[0]
	sp.CopyFrom(snapshot)
	for i, v := range sp.P {
		if v != i {
			t.Errorf("after CopyFrom, P[%d] = %d, want %d", i, v, i)
		}
	}
}
