package levelgen

// Типы террейна
const (
	TerrainStone = "stone"
	TerrainDirt  = "dirt"
	TerrainGrass = "grass"
	TerrainSand  = "sand"
)

// Position — координата тайла на сетке.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile — одна клетка сетки.
//
// Создается в фазе Terrain, мутирует в фазах Obstacle/Repair и
// становится неизменяемой после финализации уровня.
type Tile struct {
	X             int    `json:"x"`
	Y             int    `json:"y"`
	Terrain       string `json:"terrain"`
	Walkable      bool   `json:"walkable"`
	Obstacle      string `json:"obstacle,omitempty"`   // пустая строка = препятствия нет
	Decoration    string `json:"decoration,omitempty"` // косметика, проходимость не меняет
	SpriteVariant int    `json:"spriteVariant"`
}

// Artifact — находка, закрепленная за точкой интереса.
type Artifact struct {
	ID         string `json:"id"`
	IsValuable bool   `json:"isValuable"`
}

// POI — точка интереса: раскапываемое место с артефактом.
//
// Позиция назначается сэмплером один раз и больше никогда не двигается.
// Tool — категория инструмента, которым точку нужно вскрывать.
type POI struct {
	ID              string   `json:"id"`
	Pos             Position `json:"pos"`
	Tool            string   `json:"tool"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DiscoveryRadius int      `json:"discoveryRadius"`
	Discovered      bool     `json:"discovered"`
	WrongAttempts   int      `json:"wrongAttempts"`
	Artifact        Artifact `json:"artifact"`
}

// ExclusionZone — круглая зона, внутрь которой сэмплер не ставит точки.
type ExclusionZone struct {
	Center Position
	Radius float64
}

// LevelInfo — срез конфига, который уезжает наружу вместе с уровнем.
type LevelInfo struct {
	Seed     int64 `json:"seed"`
	Width    int   `json:"width"`
	Height   int   `json:"height"`
	POICount int   `json:"poiCount"`
}

// Metadata — служебные данные о прошедшей генерации.
type Metadata struct {
	Seed               int64 `json:"seed"`
	ValidationAttempts int   `json:"validationAttempts"`
	GeneratedAt        int64 `json:"generatedAt"` // Unix milliseconds
}

// Level — единственное значение, которое покидает генератор.
// После возврата из Generate никто его не мутирует.
type Level struct {
	Config      LevelInfo `json:"config"`
	Grid        [][]Tile  `json:"grid"` // Grid[y][x]
	POIs        []POI     `json:"pois"`
	PlayerSpawn Position  `json:"playerSpawn"`
	Metadata    Metadata  `json:"metadata"`
}

// TileAt возвращает тайл по координатам (без проверки границ).
func (l *Level) TileAt(x, y int) *Tile {
	return &l.Grid[y][x]
}

// InBounds проверяет, лежит ли координата внутри сетки.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Config.Width && y >= 0 && y < l.Config.Height
}
