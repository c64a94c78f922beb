package levelgen

import "math"

// Noise — сеточный 2D-шум (value noise) с засеянной хеш-решеткой.
//
// В каждом целочисленном узле решетки значение вычисляется хешем от
// координат и сида, между узлами — билинейная интерполяция со
// smoothstep-сглаживанием. Результат лежит в [-1, 1).
//
// Хеш решетки (uint32 с переполнением, константы — контракт сида):
//
//	h = ix*374761393 + iy*668265263 + seed*1274126177
//	h ^= h >> 13;  h *= 1103515245;  h ^= h >> 16
//
// Шум НЕ потребляет поток SeededRandom: значение узла зависит только от
// координат и сида, поэтому поле можно сэмплировать в любом порядке.
type Noise struct {
	seed uint32
}

// NewNoise создает поле шума. Разные сиды дают независимые поля.
func NewNoise(seed int64) *Noise {
	return &Noise{seed: uint32(seed)}
}

// lattice возвращает значение узла решетки в [-1, 1).
func (n *Noise) lattice(ix, iy int) float64 {
	h := uint32(ix)*374761393 + uint32(iy)*668265263 + n.seed*1274126177
	h ^= h >> 13
	h *= 1103515245
	h ^= h >> 16
	return float64(h&0x7FFFFFFF)/1073741824.0 - 1.0
}

// smoothstep — кубическое сглаживание 3t^2 - 2t^3 на [0,1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Noise2D возвращает значение шума в точке (x, y).
func (n *Noise) Noise2D(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))

	sx := smoothstep(x - math.Floor(x))
	sy := smoothstep(y - math.Floor(y))

	n00 := n.lattice(x0, y0)
	n10 := n.lattice(x0+1, y0)
	n01 := n.lattice(x0, y0+1)
	n11 := n.lattice(x0+1, y0+1)

	top := n00 + sx*(n10-n00)
	bottom := n01 + sx*(n11-n01)
	return top + sy*(bottom-top)
}
