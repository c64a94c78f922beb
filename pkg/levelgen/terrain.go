package levelgen

// runTerrain — фаза Terrain: категоризация каждого тайла по шуму.
//
// Для тайла берется значение шума в (x*scale, y*scale), нормализуется в
// [0,1] и прогоняется через три упорядоченных порога темы. Дополнительно
// каждому тайлу назначается небольшой спрайт-вариант (чистая косметика),
// он тянется из потока RNG в строгом построчном порядке.
//
// Фаза тотальна: отказов у нее нет.
func (st *generationState) runTerrain() {
	st.grid = make([][]Tile, st.cfg.Height)
	for y := 0; y < st.cfg.Height; y++ {
		row := make([]Tile, st.cfg.Width)
		for x := 0; x < st.cfg.Width; x++ {
			n := st.terrainNoise.Noise2D(float64(x)*terrainNoiseScale, float64(y)*terrainNoiseScale)
			normalized := n*0.5 + 0.5

			row[x] = Tile{
				X:             x,
				Y:             y,
				Terrain:       categorizeTerrain(normalized, st.cfg.Theme.TerrainThresholds),
				Walkable:      true,
				SpriteVariant: st.rng.IntBetween(0, 3),
			}
		}
		st.grid[y] = row
	}
}

// categorizeTerrain отображает нормализованный шум [0,1] ровно в одну
// из четырех категорий.
func categorizeTerrain(n float64, thresholds [3]float64) string {
	switch {
	case n < thresholds[0]:
		return TerrainStone
	case n < thresholds[1]:
		return TerrainDirt
	case n < thresholds[2]:
		return TerrainGrass
	default:
		return TerrainSand
	}
}
