package geom

import (
	"math"
	"testing"
)

func TestClassifyVertical(t *testing.T) {
	root := XYWH(0, 0, 100, 100)
	tests := []struct {
		name string
		top  float64
		want AxisPosition
	}{
		{"far above", -10000, Before},
		{"one unit above", -11, Before},
		{"bottom edge on root top", -10, Within},
		{"one unit inside top", -9, Within},
		{"fully inside", 40, Within},
		{"top edge on root bottom", 100, Within},
		{"one unit below", 101, After},
		{"far below", 100000, After},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := XYWH(0, tt.top, 10, 10)
			if got := Classify(AxisY, target, root); got != tt.want {
				t.Errorf("Classify(y, top=%v) = %d, want %d", tt.top, got, tt.want)
			}
		})
	}
}

func TestClassifyHorizontal(t *testing.T) {
	root := XYWH(1000, 1000, 100, 100)
	tests := []struct {
		name string
		left float64
		want AxisPosition
	}{
		{"left of region", 0, Before},
		{"right edge on region left", 990, Within},
		{"inside", 1050, Within},
		{"left edge on region right", 1100, Within},
		{"right of region", 1101, After},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := XYWH(tt.left, 1000, 10, 10)
			if got := Classify(AxisX, target, root); got != tt.want {
				t.Errorf("Classify(x, left=%v) = %d, want %d", tt.left, got, tt.want)
			}
		})
	}
}

func TestClassifyIgnoresOtherAxis(t *testing.T) {
	root := XYWH(0, 0, 100, 100)
	target := XYWH(50, -500, 10, 10)
	if got := Classify(AxisX, target, root); got != Within {
		t.Fatalf("x = %d, want 0", got)
	}
	if got := Classify(AxisY, target, root); got != Before {
		t.Fatalf("y = %d, want -1", got)
	}
}

func TestClassifyNaNFallsThrough(t *testing.T) {
	root := XYWH(0, 0, 100, 100)
	target := XYWH(math.NaN(), math.NaN(), 10, 10)
	if got := Locate(target, root); got != (Position{}) {
		t.Fatalf("Locate(NaN) = %+v, want zero position", got)
	}
}

func TestLocate(t *testing.T) {
	root := XYWH(0, 0, 800, 600)
	tests := []struct {
		name   string
		target Rect
		want   Position
	}{
		{"above", XYWH(0, -10000, 100, 100), Position{X: Within, Y: Before}},
		{"origin", XYWH(0, 0, 100, 100), Position{}},
		{"below", XYWH(0, 100000, 100, 100), Position{X: Within, Y: After}},
		{"left", XYWH(-10000, 0, 100, 100), Position{X: Before, Y: Within}},
		{"right", XYWH(100000, 0, 100, 100), Position{X: After, Y: Within}},
		{"top-right", XYWH(10000, -10000, 100, 100), Position{X: After, Y: Before}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locate(tt.target, root)
			if got != tt.want {
				t.Errorf("Locate = %+v, want %+v", got, tt.want)
			}
			if got.Inside() != (tt.want == Position{}) {
				t.Errorf("Inside() = %v for %+v", got.Inside(), got)
			}
		})
	}
}
