package engine

import "testing"

func TestXPToNextLevelCurve(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 120},
		{3, 144},
		{4, 172}, // floor(100 * 1.2^3) = floor(172.8)
		{5, 207},
		{10, 515},
	}
	for _, c := range cases {
		if got := XPToNextLevel(c.level); got != c.want {
			t.Errorf("XPToNextLevel(%d)=%d, want %d", c.level, got, c.want)
		}
	}
}

func TestXPToNextLevelClampsBelowOne(t *testing.T) {
	if got := XPToNextLevel(0); got != 100 {
		t.Fatalf("XPToNextLevel(0)=%d, want 100", got)
	}
	if got := XPToNextLevel(-3); got != 100 {
		t.Fatalf("XPToNextLevel(-3)=%d, want 100", got)
	}
}
