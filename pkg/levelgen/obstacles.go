package levelgen

// runObstaclePlacement — фаза ObstaclePlacement.
//
// По второму, независимо масштабированному полю шума: если значение
// превышает порог 1 - 2*density, тайл получает взвешенно-случайную
// категорию препятствия и становится непроходимым. Зарезервированные
// тайлы (зона спавна и тайлы POI) фаза не посещает вовсе, поэтому спавн
// и точки интереса проходимы при любой плотности.
//
// Тайлы, не ставшие препятствием, тем же проходом получают шанс на
// косметическую декорацию из пула темы.
func (st *generationState) runObstaclePlacement() error {
	threshold := 1 - 2*st.cfg.ObstacleDensity
	decorations := st.cfg.Theme.resolvedDecorations()
	placed := 0

	for y := 0; y < st.cfg.Height; y++ {
		for x := 0; x < st.cfg.Width; x++ {
			if st.reserved[y*st.cfg.Width+x] {
				continue
			}

			n := st.obstacleNoise.Noise2D(float64(x)*obstacleNoiseScale, float64(y)*obstacleNoiseScale)
			if n > threshold {
				kind, err := st.rng.WeightedChoice(st.cfg.Theme.ObstacleWeights)
				if err != nil {
					return err
				}
				tile := &st.grid[y][x]
				tile.Obstacle = kind.Value
				tile.Walkable = false
				placed++
				continue
			}

			if st.cfg.Theme.DecorationChance > 0 && len(decorations) > 0 {
				if st.rng.Next() < st.cfg.Theme.DecorationChance {
					deco, err := Choice(st.rng, decorations)
					if err != nil {
						return err
					}
					st.grid[y][x].Decoration = deco
				}
			}
		}
	}

	st.log.WithField("obstacles", placed).Debug("Obstacle placement complete.")
	return nil
}
