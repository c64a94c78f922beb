package levelgen

import "errors"

// SeededRandom — детерминированный PRNG на базе Mulberry32.
//
// Вся генерация уровня тянет случайность ТОЛЬКО из этого потока.
// Один и тот же сид и один и тот же порядок вызовов дают побитово
// одинаковую последовательность на любой платформе: арифметика
// выполняется строго в uint32 с естественным переполнением.
//
// Константы миксера (не менять, это контракт совместимости сидов):
//
//	инкремент состояния: 0x6D2B79F5
//	шаги смешивания:     (t ^ t>>15) * (t|1),  (t ^ t>>7) * (t|61),  t ^ t>>14
//	нормализация:        / 2^32
type SeededRandom struct {
	state uint32
}

// NewSeededRandom создает генератор. Сид усекается до младших 32 бит.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{state: uint32(seed)}
}

// Next возвращает следующее число в [0, 1).
func (r *SeededRandom) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// IntBetween возвращает равномерное целое в [min, max] включительно.
func (r *SeededRandom) IntBetween(min, max int) int {
	return min + int(r.Next()*float64(max-min+1))
}

// ErrEmptyChoice возвращается при выборе из пустого списка.
var ErrEmptyChoice = errors.New("levelgen: choice from empty list")

// Choice возвращает случайный элемент списка.
func Choice[T any](r *SeededRandom, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, ErrEmptyChoice
	}
	return list[int(r.Next()*float64(len(list)))], nil
}

// Weighted — элемент таблицы весов для WeightedChoice.
type Weighted struct {
	Value  string
	Weight float64
}

// WeightedChoice выбирает элемент пропорционально весу методом
// кумулятивного вычитания: из случайного значения в [0, sum) по очереди
// вычитаются веса, побеждает элемент, на котором остаток уходит в ноль.
//
// Важный краевой случай: из-за накопленной ошибки плавающей точки
// остаток после полного прохода может остаться > 0. Тогда возвращается
// ПЕРВЫЙ элемент таблицы — это осознанный fallback, а не бага;
// детерминизм сохраняется, потому что ошибка округления воспроизводима.
func (r *SeededRandom) WeightedChoice(items []Weighted) (Weighted, error) {
	if len(items) == 0 {
		return Weighted{}, ErrEmptyChoice
	}

	var total float64
	for _, it := range items {
		total += it.Weight
	}

	remainder := r.Next() * total
	for _, it := range items {
		remainder -= it.Weight
		if remainder <= 0 {
			return it, nil
		}
	}

	return items[0], nil
}
