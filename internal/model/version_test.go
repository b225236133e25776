package model

import "testing"

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want int
	}{
		{"equal", Version{17, 2, 0}, Version{17, 2, 0}, 0},
		{"major wins", Version{16, 9, 9}, Version{17, 0, 0}, -1},
		{"minor breaks tie", Version{17, 3, 0}, Version{17, 2, 9}, 1},
		{"editorial breaks tie", Version{17, 2, 0}, Version{17, 2, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 17, Minor: 2, Editorial: 0}
	if got := v.String(); got != "17.2.0" {
		t.Errorf("String() = %q, want %q", got, "17.2.0")
	}
}
