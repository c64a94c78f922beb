package levelgen

import "testing"

// makeOpenGrid строит полностью проходимую сетку для тестов.
func makeOpenGrid(width, height int) [][]Tile {
	grid := make([][]Tile, height)
	for y := range grid {
		row := make([]Tile, width)
		for x := range row {
			row[x] = Tile{X: x, Y: y, Terrain: TerrainDirt, Walkable: true}
		}
		grid[y] = row
	}
	return grid
}

func blockColumn(grid [][]Tile, x int) {
	for y := range grid {
		grid[y][x].Obstacle = "boulder"
		grid[y][x].Walkable = false
	}
}

func TestFloodFill_OpenGrid(t *testing.T) {
	grid := makeOpenGrid(10, 8)
	reached := floodFill(grid, Position{X: 5, Y: 4})

	if len(reached) != 80 {
		t.Errorf("reached %d tiles, want 80", len(reached))
	}
}

func TestFloodFill_WallSplitsGrid(t *testing.T) {
	grid := makeOpenGrid(10, 8)
	blockColumn(grid, 5)

	reached := floodFill(grid, Position{X: 0, Y: 0})

	// Левая половина: колонки 0..4, все строки
	if len(reached) != 5*8 {
		t.Errorf("reached %d tiles, want %d", len(reached), 5*8)
	}
	if reached[0*10+7] {
		t.Error("tile beyond the wall must be unreachable")
	}
}

func TestFloodFill_DiagonalIsNotConnected(t *testing.T) {
	// Два проходимых тайла касаются только углами — 4-связность
	// не должна их соединять.
	grid := makeOpenGrid(3, 3)
	grid[0][1].Walkable = false
	grid[1][0].Walkable = false
	grid[1][2].Walkable = false
	grid[2][1].Walkable = false

	reached := floodFill(grid, Position{X: 1, Y: 1})
	if len(reached) != 1 {
		t.Errorf("diagonal leak: reached %d tiles, want 1", len(reached))
	}
}

func TestFindUnreachablePOIs(t *testing.T) {
	grid := makeOpenGrid(10, 8)
	blockColumn(grid, 6)

	pois := []POI{
		{ID: "poi_0", Pos: Position{X: 2, Y: 2}},
		{ID: "poi_1", Pos: Position{X: 8, Y: 3}},
		{ID: "poi_2", Pos: Position{X: 9, Y: 7}},
	}

	unreachable := findUnreachablePOIs(grid, Position{X: 0, Y: 0}, pois)

	if len(unreachable) != 2 {
		t.Fatalf("got %d unreachable POIs, want 2", len(unreachable))
	}
	if unreachable[0].ID != "poi_1" || unreachable[1].ID != "poi_2" {
		t.Errorf("wrong POIs reported: %v, %v", unreachable[0].ID, unreachable[1].ID)
	}
}

func TestFindUnreachablePOIs_AllReachable(t *testing.T) {
	grid := makeOpenGrid(10, 8)
	pois := []POI{
		{ID: "poi_0", Pos: Position{X: 2, Y: 2}},
		{ID: "poi_1", Pos: Position{X: 9, Y: 7}},
	}

	if got := findUnreachablePOIs(grid, Position{X: 0, Y: 0}, pois); len(got) != 0 {
		t.Errorf("expected no unreachable POIs, got %d", len(got))
	}
}
