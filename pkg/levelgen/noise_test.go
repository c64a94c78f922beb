package levelgen

import (
	"math"
	"testing"
)

func TestNoise2D_Deterministic(t *testing.T) {
	a := NewNoise(12345)
	b := NewNoise(12345)

	for i := 0; i < 500; i++ {
		x := float64(i) * 0.137
		y := float64(i) * 0.291
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("noise diverged at sample %d", i)
		}
	}
}

func TestNoise2D_Range(t *testing.T) {
	n := NewNoise(7)
	for i := 0; i < 2000; i++ {
		v := n.Noise2D(float64(i)*0.173, float64(i)*0.311)
		if v < -1 || v >= 1 {
			t.Fatalf("Noise2D out of [-1,1): %v", v)
		}
	}
}

func TestNoise2D_SeedChangesField(t *testing.T) {
	a := NewNoise(1)
	b := NewNoise(2)

	different := false
	for i := 0; i < 100 && !different; i++ {
		x := float64(i) * 0.37
		if a.Noise2D(x, x) != b.Noise2D(x, x) {
			different = true
		}
	}
	if !different {
		t.Error("different seeds produced identical noise fields")
	}
}

// В целочисленных узлах шум совпадает со значением решетки: интерполяция
// с весами 0 не должна ничего примешивать.
func TestNoise2D_LatticePointsExact(t *testing.T) {
	n := NewNoise(42)
	points := []struct{ x, y int }{{0, 0}, {1, 0}, {5, 9}, {100, 7}}

	for _, p := range points {
		got := n.Noise2D(float64(p.x), float64(p.y))
		want := n.lattice(p.x, p.y)
		if got != want {
			t.Errorf("Noise2D(%d,%d) = %v, lattice = %v", p.x, p.y, got, want)
		}
	}
}

// Шум непрерывен: маленький шаг по координате не дает скачка.
func TestNoise2D_Smoothness(t *testing.T) {
	n := NewNoise(3)
	const step = 0.01

	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.091
		delta := math.Abs(n.Noise2D(x+step, y) - n.Noise2D(x, y))
		if delta > 0.2 {
			t.Fatalf("noise jump %v at (%v, %v)", delta, x, y)
		}
	}
}
