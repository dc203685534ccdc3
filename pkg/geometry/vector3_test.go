package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Horizontal(t *testing.T) {
	v := NewVector3(3, 4, 12)

	if math.Abs(v.Horizontal()-5) > 1e-10 {
		t.Errorf("Horizontal failed: expected 5, got %v", v.Horizontal())
	}
	if math.Abs(v.Length()-13) > 1e-10 {
		t.Errorf("Length failed: expected 13, got %v", v.Length())
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	normalized := NewVector3(3, 4, 0).Normalize()

	if math.Abs(normalized.Length()-1) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	zero := Vector3{}.Normalize()
	if zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	east := NewVector3(1, 0, 0)
	north := NewVector3(0, 1, 0)
	result := east.Cross(north)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector2HasNoHeight(t *testing.T) {
	p := NewVector2(10, 20)
	if p.HasHeight() {
		t.Errorf("expected unknown height, got %v", p.H)
	}
	if !NewVector3(1, 2, 0).HasHeight() {
		t.Errorf("zero height must count as known")
	}
}
