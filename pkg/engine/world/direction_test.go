package world

import "testing"

func TestDirection_OppositeAndOffset(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		offset   Coordinate
	}{
		{North, South, Coordinate{-10, 0}},
		{East, West, Coordinate{0, 10}},
		{South, North, Coordinate{10, 0}},
		{West, East, Coordinate{0, -10}},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.opposite)
		}
		if got := Offset(tt.dir); got != tt.offset {
			t.Errorf("Offset(%v) = %v, want %v", tt.dir, got, tt.offset)
		}
		if got := Origin.Step(tt.dir).Step(tt.opposite); got != Origin {
			t.Errorf("stepping %v and back = %v, want origin", tt.dir, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"north", North, false},
		{"E", East, false},
		{" South ", South, false},
		{"w", West, false},
		{"any", AnyDirection, false},
		{"up", AnyDirection, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
