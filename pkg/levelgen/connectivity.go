package levelgen

// ConnectivityValidator — одна заливка (flood fill) от спавна по
// 4-связным проходимым тайлам, O(количество тайлов).
//
// Ключевая оптимизация подсистемы: ОДНА заливка на всю карту вместо
// запуска поиска пути до каждой POI отдельно (O(n) против O(k*n log n)
// для k точек). Любая переделка обязана сохранить эту асимметрию.

// floodFill возвращает множество индексов тайлов (y*width+x),
// достижимых от start по проходимым тайлам.
func floodFill(grid [][]Tile, start Position) map[int]bool {
	height := len(grid)
	if height == 0 {
		return map[int]bool{}
	}
	width := len(grid[0])

	reached := make(map[int]bool, width*height/2)
	if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= height {
		return reached
	}

	stack := []Position{start}
	reached[start.Y*width+start.X] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range cardinalDirections {
			nx := cur.X + d.X
			ny := cur.Y + d.Y
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			idx := ny*width + nx
			if reached[idx] || !grid[ny][nx].Walkable {
				continue
			}
			reached[idx] = true
			stack = append(stack, Position{X: nx, Y: ny})
		}
	}

	return reached
}

// findUnreachablePOIs возвращает POI, до которых заливка от спавна не
// дошла. Пустой срез означает успешную валидацию.
func findUnreachablePOIs(grid [][]Tile, spawn Position, pois []POI) []POI {
	width := len(grid[0])
	reached := floodFill(grid, spawn)

	var unreachable []POI
	for _, p := range pois {
		if !reached[p.Pos.Y*width+p.Pos.X] {
			unreachable = append(unreachable, p)
		}
	}
	return unreachable
}

// 4-связные направления: север, восток, юг, запад.
var cardinalDirections = [4]Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}
