package ordering

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"less", 1, 2, -1},
		{"greater", 2, 1, 1},
		{"equal", 3, 3, 0},
		{"negative", -5, -4, -1},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompare_Float(t *testing.T) {
	if got := Compare(1.5, 2.5); got != -1 {
		t.Errorf("Compare(1.5, 2.5) = %d, want -1", got)
	}
}
