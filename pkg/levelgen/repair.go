package levelgen

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// repairClearChance — вероятность расчистить отдельное препятствие на
// идеальном коридоре. Меньше единицы намеренно: частичная расчистка дает
// органичные проломы вместо прямого туннеля.
const repairClearChance = 0.5

// PathRepairer: для каждой недостижимой POI строится A*-путь от спавна,
// ИГНОРИРУЯ препятствия (только границы карты), и препятствия вдоль
// этого коридора расчищаются независимо друг от друга с вероятностью
// repairClearChance из общего потока RNG.

// pathNode — узел A*.
type pathNode struct {
	pos    Position
	g      int
	f      int
	order  int // порядковый номер вставки, разрешает ничьи по f
	parent *pathNode
}

// nodeHeap — бинарная min-куча по ключу (f, order).
//
// Тай-брейк фиксирован: при равных f побеждает раньше открытый узел.
// Это делает форму пути детерминированной при одинаковом сиде.
type nodeHeap []*pathNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].order < h[j].order
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*pathNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

func manhattan(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// astarIgnoringObstacles строит кратчайший путь start -> goal по
// 4-связной сетке, считая ВСЕ тайлы проходимыми. Эвристика — манхэттен,
// стоимость ребра 1. На открытой карте длина пути равна манхэттенскому
// расстоянию между концами.
func astarIgnoringObstacles(width, height int, start, goal Position) []Position {
	open := &nodeHeap{}
	heap.Init(open)

	counter := 0
	startNode := &pathNode{pos: start, g: 0, f: manhattan(start, goal), order: counter}
	heap.Push(open, startNode)

	bestG := map[int]int{start.Y*width + start.X: 0}
	closed := make(map[int]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)

		if current.pos == goal {
			return reconstructPath(current)
		}

		idx := current.pos.Y*width + current.pos.X
		if closed[idx] {
			continue
		}
		closed[idx] = true

		for _, d := range cardinalDirections {
			next := Position{X: current.pos.X + d.X, Y: current.pos.Y + d.Y}
			if next.X < 0 || next.X >= width || next.Y < 0 || next.Y >= height {
				continue
			}

			nidx := next.Y*width + next.X
			tentative := current.g + 1
			if g, seen := bestG[nidx]; seen && tentative >= g {
				continue
			}

			bestG[nidx] = tentative
			counter++
			heap.Push(open, &pathNode{
				pos:    next,
				g:      tentative,
				f:      tentative + manhattan(next, goal),
				order:  counter,
				parent: current,
			})
		}
	}

	// На связной прямоугольной сетке недостижимо
	return nil
}

func reconstructPath(node *pathNode) []Position {
	var reversed []Position
	for n := node; n != nil; n = n.parent {
		reversed = append(reversed, n.pos)
	}
	path := make([]Position, len(reversed))
	for i, p := range reversed {
		path[len(path)-1-i] = p
	}
	return path
}

// repairConnectivity расчищает проломы к каждой недостижимой POI.
// Порядок обхода — порядок POI в списке уровня, он фиксирован.
func (st *generationState) repairConnectivity(unreachable []POI) {
	for _, poi := range unreachable {
		corridor := astarIgnoringObstacles(st.cfg.Width, st.cfg.Height, st.spawn, poi.Pos)

		cleared := 0
		for _, p := range corridor {
			tile := &st.grid[p.Y][p.X]
			if tile.Obstacle == "" {
				continue
			}
			if st.rng.Next() < repairClearChance {
				tile.Obstacle = ""
				tile.Walkable = true
				cleared++
			}
		}

		st.log.WithFields(logrus.Fields{
			"poi":      poi.ID,
			"corridor": len(corridor),
			"cleared":  cleared,
		}).Debug("Repair pass for unreachable POI.")
	}
}
