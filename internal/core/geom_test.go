package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
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
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
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

func TestViewportProjectCorners(t *testing.T) {
	v := Viewport{Area: NewRect(0, 0, 100, 50), HalfExtent: 50}

	tests := []struct {
		name     string
		x, z     float64
		col, row int
	}{
		{"top-left corner", -50, -50, 0, 0},
		{"center", 0, 0, 50, 25},
		{"just inside bottom-right", 49.9, 49.9, 99, 49},
		{"positive x is right", 25, 0, 75, 25},
		{"positive z is down", 0, 25, 50, 37},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.Project(tc.x, tc.z)
			if col != tc.col || row != tc.row {
				t.Errorf("Project(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.z, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestViewportUnprojectRoundTrip(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 80, 24), 50)

	for row := v.Area.Y; row < v.Area.Bottom(); row++ {
		for col := v.Area.X; col < v.Area.Right(); col++ {
			x, z := v.Unproject(col, row)
			c, r := v.Project(x, z)
			if c != col || r != row {
				t.Fatalf("Project(Unproject(%d, %d)) = (%d, %d)", col, row, c, r)
			}
		}
	}
}

func TestNewViewportKeepsAspect(t *testing.T) {
	v := NewViewport(NewRect(0, 2, 120, 30), 50)

	if v.Area.H != 30 || v.Area.W != 60 {
		t.Errorf("expected 60x30 area, got %dx%d", v.Area.W, v.Area.H)
	}
	if v.Area.X != 30 || v.Area.Y != 2 {
		t.Errorf("expected area centered at (30, 2), got (%d, %d)", v.Area.X, v.Area.Y)
	}

	narrow := NewViewport(NewRect(0, 0, 40, 30), 50)
	if narrow.Area.W != 40 || narrow.Area.H != 20 {
		t.Errorf("narrow screen: expected 40x20, got %dx%d", narrow.Area.W, narrow.Area.H)
	}
}

func TestViewportProjectRectMinimumSize(t *testing.T) {
	v := Viewport{Area: NewRect(0, 0, 20, 10), HalfExtent: 50}

	r := v.ProjectRect(0, 0, 0.5, 0.5)
	if r.W < 1 || r.H < 1 {
		t.Errorf("ProjectRect should be at least 1x1, got %dx%d", r.W, r.H)
	}

	big := v.ProjectRect(0, 0, 50, 50)
	if big.W != 10 || big.H != 5 {
		t.Errorf("ProjectRect(50x50) = %dx%d, expected 10x5", big.W, big.H)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
