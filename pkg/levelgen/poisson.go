package levelgen

import "math"

// Лимит подбора стартовой точки сэмплера.
const initialPointRetries = 1000

// PoissonDiscSampler — размещение точек "синим шумом" по Бридсону.
//
// Гарантии: любая пара точек разнесена минимум на minDistance, все точки
// в границах сетки и вне зон отчуждения. Для O(1) проверки соседей
// используется фоновая сетка с ячейкой minDistance/sqrt(2): в ячейку
// влезает максимум одна точка, достаточно осмотреть окно 5x5.
//
// Вся случайность идет через переданный SeededRandom, других источников
// энтропии нет.
type PoissonDiscSampler struct {
	width       int
	height      int
	minDistance float64
	maxAttempts int
	zones       []ExclusionZone
	rng         *SeededRandom

	cellSize float64
	cols     int
	rows     int
	cells    []*Position
}

// NewPoissonDiscSampler создает сэмплер для заданных границ.
func NewPoissonDiscSampler(width, height, minDistance, maxAttempts int, zones []ExclusionZone, rng *SeededRandom) *PoissonDiscSampler {
	cellSize := float64(minDistance) / math.Sqrt2
	cols := int(math.Ceil(float64(width) / cellSize))
	rows := int(math.Ceil(float64(height) / cellSize))

	return &PoissonDiscSampler{
		width:       width,
		height:      height,
		minDistance: float64(minDistance),
		maxAttempts: maxAttempts,
		zones:       zones,
		rng:         rng,
		cellSize:    cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]*Position, cols*rows),
	}
}

func (s *PoissonDiscSampler) inBounds(p Position) bool {
	return p.X >= 0 && p.X < s.width && p.Y >= 0 && p.Y < s.height
}

func (s *PoissonDiscSampler) inExcludedZone(p Position) bool {
	for _, z := range s.zones {
		dx := float64(p.X - z.Center.X)
		dy := float64(p.Y - z.Center.Y)
		if math.Sqrt(dx*dx+dy*dy) < z.Radius {
			return true
		}
	}
	return false
}

func (s *PoissonDiscSampler) insertIntoGrid(p Position) {
	gx := int(float64(p.X) / s.cellSize)
	gy := int(float64(p.Y) / s.cellSize)
	if gy >= 0 && gy < s.rows && gx >= 0 && gx < s.cols {
		pt := p
		s.cells[gy*s.cols+gx] = &pt
	}
}

// hasNearbyPoints проверяет окно 5x5 фоновой сетки вокруг кандидата.
func (s *PoissonDiscSampler) hasNearbyPoints(p Position) bool {
	gx := int(float64(p.X) / s.cellSize)
	gy := int(float64(p.Y) / s.cellSize)

	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			cx := gx + dx
			cy := gy + dy
			if cx < 0 || cx >= s.cols || cy < 0 || cy >= s.rows {
				continue
			}
			existing := s.cells[cy*s.cols+cx]
			if existing == nil {
				continue
			}
			ddx := float64(p.X - existing.X)
			ddy := float64(p.Y - existing.Y)
			if math.Sqrt(ddx*ddx+ddy*ddy) < s.minDistance {
				return true
			}
		}
	}
	return false
}

// findInitialPoint подбирает валидную стартовую точку.
// Количество попыток ограничено, чтобы вырожденные зоны отчуждения
// (закрывающие всю карту) не превращались в вечный цикл.
func (s *PoissonDiscSampler) findInitialPoint() (Position, bool) {
	for i := 0; i < initialPointRetries; i++ {
		candidate := Position{
			X: int(s.rng.Next() * float64(s.width)),
			Y: int(s.rng.Next() * float64(s.height)),
		}
		if !s.inExcludedZone(candidate) {
			return candidate, true
		}
	}
	return Position{}, false
}

// Sample размещает target точек.
//
// Пока активный список не пуст и точек меньше target: берется случайная
// активная точка, для нее делается до maxAttempts кандидатов на радиусе
// [minDistance, 2*minDistance) под случайным углом; первый кандидат,
// прошедший границы + зоны + разнос, принимается, иначе точка выбывает
// из активного списка. Если список исчерпан раньше, чем набрано target —
// InsufficientPoints.
func (s *PoissonDiscSampler) Sample(target int) ([]Position, error) {
	initial, ok := s.findInitialPoint()
	if !ok {
		return nil, &InsufficientPointsError{Target: target, Achieved: 0}
	}

	points := []Position{initial}
	active := []Position{initial}
	s.insertIntoGrid(initial)

	for len(active) > 0 && len(points) < target {
		idx := int(s.rng.Next() * float64(len(active)))
		point := active[idx]
		found := false

		for i := 0; i < s.maxAttempts; i++ {
			angle := s.rng.Next() * 2 * math.Pi
			radius := s.minDistance * (1 + s.rng.Next())

			candidate := Position{
				X: int(math.Round(float64(point.X) + radius*math.Cos(angle))),
				Y: int(math.Round(float64(point.Y) + radius*math.Sin(angle))),
			}

			if !s.inBounds(candidate) {
				continue
			}
			if s.inExcludedZone(candidate) {
				continue
			}
			if s.hasNearbyPoints(candidate) {
				continue
			}

			points = append(points, candidate)
			active = append(active, candidate)
			s.insertIntoGrid(candidate)
			found = true
			break
		}

		if !found {
			active = append(active[:idx], active[idx+1:]...)
		}
	}

	if len(points) < target {
		return nil, &InsufficientPointsError{Target: target, Achieved: len(points)}
	}

	return points, nil
}
