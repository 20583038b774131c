package core

import "testing"

func TestPositionAddEqual(t *testing.T) {
	p := Pos(5, 7)

	tests := []struct {
		name     string
		dx, dy   int
		expected Position
	}{
		{"up", 0, -1, Pos(5, 6)},
		{"down", 0, 1, Pos(5, 8)},
		{"left", -1, 0, Pos(4, 7)},
		{"right", 1, 0, Pos(6, 7)},
		{"none", 0, 0, Pos(5, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Add(tc.dx, tc.dy)
			if !got.Equal(tc.expected) {
				t.Errorf("Add(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}

	if p != Pos(5, 7) {
		t.Error("Add should not mutate the receiver")
	}
	if Pos(1, 2).Equal(Pos(2, 1)) {
		t.Error("Equal should compare coordinates exactly")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := r.ContainsPos(Pos(tc.x, tc.y)); got != tc.expected {
				t.Errorf("ContainsPos(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndScale(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	s := NewRect(1, 2, 3, 4).Scale(16)
	if s != NewRect(16, 32, 48, 64) {
		t.Errorf("Scale(16) = %+v", s)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
