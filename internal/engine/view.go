package engine

import (
	"expedition-server/pkg/api"
	"expedition-server/pkg/levelgen"
)

// BuildLevelView конвертирует уровень в DTO для клиента.
//
// Артефакты в DTO не попадают: содержимое точки интереса — серверный
// секрет до момента раскопки.
func BuildLevelView(number int, lvl *levelgen.Level) api.LevelView {
	view := api.LevelView{
		Number: number,
		Theme:  levelgen.Themes[number%len(levelgen.Themes)].Name,
		Grid: api.GridMeta{
			Width:  lvl.Config.Width,
			Height: lvl.Config.Height,
		},
		Tiles: make([]api.TileView, 0, lvl.Config.Width*lvl.Config.Height),
		POIs:  make([]api.POIView, 0, len(lvl.POIs)),
		Spawn: api.PositionView{
			X: lvl.PlayerSpawn.X,
			Y: lvl.PlayerSpawn.Y,
		},
		GeneratedAt: lvl.Metadata.GeneratedAt,
	}

	for y := 0; y < lvl.Config.Height; y++ {
		for x := 0; x < lvl.Config.Width; x++ {
			tile := lvl.Grid[y][x]
			view.Tiles = append(view.Tiles, api.TileView{
				X:             tile.X,
				Y:             tile.Y,
				Terrain:       tile.Terrain,
				SpriteVariant: tile.SpriteVariant,
				Walkable:      tile.Walkable,
				Obstacle:      tile.Obstacle,
				Decoration:    tile.Decoration,
			})
		}
	}

	for _, p := range lvl.POIs {
		view.POIs = append(view.POIs, api.POIView{
			ID:              p.ID,
			Pos:             api.PositionView{X: p.Pos.X, Y: p.Pos.Y},
			Tool:            p.Tool,
			Name:            p.Name,
			Description:     p.Description,
			DiscoveryRadius: p.DiscoveryRadius,
		})
	}

	return view
}
