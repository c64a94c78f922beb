package levelgen

import (
	"testing"

	"expedition-server/pkg/logger"
)

func newTestState(width, height int, seed int64) *generationState {
	return &generationState{
		cfg: GenerationConfig{
			Width:  width,
			Height: height,
		},
		rng:  NewSeededRandom(seed),
		grid: makeOpenGrid(width, height),
		log:  logger.WithComponent("levelgen_test"),
	}
}

// На открытой карте A* с игнорированием препятствий обязан выдать путь
// длиной ровно в манхэттенское расстояние (+1 узел на старт).
func TestAStar_PathLengthEqualsManhattan(t *testing.T) {
	tests := []struct {
		name        string
		start, goal Position
	}{
		{"straight line", Position{X: 0, Y: 0}, Position{X: 9, Y: 0}},
		{"diagonal corner", Position{X: 0, Y: 0}, Position{X: 9, Y: 7}},
		{"same tile", Position{X: 4, Y: 4}, Position{X: 4, Y: 4}},
		{"reverse direction", Position{X: 8, Y: 6}, Position{X: 1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := astarIgnoringObstacles(10, 8, tt.start, tt.goal)
			if path == nil {
				t.Fatal("no path on an open grid")
			}

			wantLen := manhattan(tt.start, tt.goal) + 1
			if len(path) != wantLen {
				t.Errorf("path length = %d, want %d", len(path), wantLen)
			}
			if path[0] != tt.start || path[len(path)-1] != tt.goal {
				t.Errorf("path endpoints wrong: %v .. %v", path[0], path[len(path)-1])
			}

			// Соседние узлы пути — строго 4-связные шаги
			for i := 1; i < len(path); i++ {
				if manhattan(path[i-1], path[i]) != 1 {
					t.Errorf("non-cardinal step %v -> %v", path[i-1], path[i])
				}
			}
		})
	}
}

// Тай-брейк по порядку открытия фиксирован: два запуска дают одну и ту
// же форму пути, не только одинаковую длину.
func TestAStar_DeterministicTieBreaking(t *testing.T) {
	a := astarIgnoringObstacles(20, 20, Position{X: 2, Y: 3}, Position{X: 15, Y: 17})
	b := astarIgnoringObstacles(20, 20, Position{X: 2, Y: 3}, Position{X: 15, Y: 17})

	if len(a) != len(b) {
		t.Fatalf("path lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("paths diverge at step %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// Ремонт пробивает стену: цикл validate -> repair на разрезанной карте
// сходится за разумное число попыток.
func TestRepairConnectivity_BreachesWall(t *testing.T) {
	st := newTestState(20, 10, 4242)
	blockColumn(st.grid, 10)

	st.spawn = Position{X: 2, Y: 5}
	st.pois = []POI{{ID: "poi_0", Pos: Position{X: 17, Y: 5}}}

	for attempt := 1; attempt <= DefaultMaxValidationAttempts; attempt++ {
		unreachable := findUnreachablePOIs(st.grid, st.spawn, st.pois)
		if len(unreachable) == 0 {
			return // связность восстановлена
		}
		st.repairConnectivity(unreachable)
	}

	t.Fatal("wall not breached within the validation attempt limit")
}

// Ремонт не трогает препятствия вне коридора.
func TestRepairConnectivity_ClearsOnlyCorridorTiles(t *testing.T) {
	st := newTestState(20, 10, 7)
	blockColumn(st.grid, 10)

	// Препятствие далеко в стороне от коридора spawn -> poi
	st.grid[0][19].Obstacle = "boulder"
	st.grid[0][19].Walkable = false

	st.spawn = Position{X: 2, Y: 9}
	st.pois = []POI{{ID: "poi_0", Pos: Position{X: 17, Y: 9}}}

	for attempt := 1; attempt <= DefaultMaxValidationAttempts; attempt++ {
		unreachable := findUnreachablePOIs(st.grid, st.spawn, st.pois)
		if len(unreachable) == 0 {
			break
		}
		st.repairConnectivity(unreachable)
	}

	if st.grid[0][19].Obstacle == "" {
		t.Error("repair cleared an obstacle far outside the corridor")
	}
}
