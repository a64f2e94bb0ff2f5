package game

import "testing"

func TestEvaluate(t *testing.T) {
	cases := []struct {
		position string
		want     int
	}{
		{"00|11", Player1Wins},
		{"11|00", Player0Wins},
		{"11|11", 0},
		{"04|13", 0},
		{"00|01", Player1Wins},
	}
	for _, c := range cases {
		if got := Evaluate(MustParsePosition(c.position)); got != c.want {
			t.Errorf("Evaluate(%q) = %d, want %d", c.position, got, c.want)
		}
	}
}

func TestEvaluateNeverReportsBothWinners(t *testing.T) {
	// Over the whole position space, Evaluate must return exactly one of
	// the two terminal scores or zero, never a mixture.
	for a := 0; a <= MaxFingers; a++ {
		for b := 0; b <= MaxFingers; b++ {
			for c := 0; c <= MaxFingers; c++ {
				for d := 0; d <= MaxFingers; d++ {
					pos := Position{Hands: [2]Hand{{a, b}, {c, d}}}
					got := Evaluate(pos)
					if got != 0 && got != Player0Wins && got != Player1Wins {
						t.Fatalf("Evaluate(%s) = %d, not a defined score", pos, got)
					}
				}
			}
		}
	}
}
