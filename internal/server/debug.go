package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"expedition-server/internal/engine"
	"expedition-server/pkg/levelgen"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/levels", h.handleListLevels)
	mux.HandleFunc("/debug/ascii", h.handleASCII)
}

// /debug/levels - сводка по сгенерированным уровням в кэше
func (h *DebugHandler) handleListLevels(w http.ResponseWriter, r *http.Request) {
	type LevelSummary struct {
		Number             int    `json:"number"`
		Seed               int64  `json:"seed"`
		Theme              string `json:"theme"`
		Width              int    `json:"width"`
		Height             int    `json:"height"`
		POICount           int    `json:"poi_count"`
		ValidationAttempts int    `json:"validation_attempts"`
	}

	var summary []LevelSummary

	// Только кэш: debug-эндпоинт ничего не генерирует сам
	for _, n := range h.Service.GeneratedLevels() {
		lvl, ok := h.Service.CachedLevel(n)
		if !ok {
			continue
		}
		summary = append(summary, LevelSummary{
			Number:             n,
			Seed:               lvl.Metadata.Seed,
			Theme:              levelgen.Themes[n%len(levelgen.Themes)].Name,
			Width:              lvl.Config.Width,
			Height:             lvl.Config.Height,
			POICount:           len(lvl.POIs),
			ValidationAttempts: lvl.Metadata.ValidationAttempts,
		})
	}

	writeJSON(w, summary)
}

// /debug/ascii?level=1 - текстовый рендер уровня для быстрой проверки глазами
func (h *DebugHandler) handleASCII(w http.ResponseWriter, r *http.Request) {
	levelStr := r.URL.Query().Get("level")
	var number int
	fmt.Sscanf(levelStr, "%d", &number)

	lvl, ok := h.Service.CachedLevel(number)
	if !ok {
		http.Error(w, "Level not generated yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(renderASCII(lvl)))
}

var terrainGlyphs = map[string]byte{
	levelgen.TerrainStone: ':',
	levelgen.TerrainDirt:  '.',
	levelgen.TerrainGrass: '"',
	levelgen.TerrainSand:  '~',
}

// renderASCII рисует уровень посимвольно: @ спавн, P точки интереса,
// # препятствия, * декорации, остальное — глиф террейна.
func renderASCII(lvl *levelgen.Level) string {
	pois := make(map[levelgen.Position]bool, len(lvl.POIs))
	for _, p := range lvl.POIs {
		pois[p.Pos] = true
	}

	var sb strings.Builder
	sb.Grow((lvl.Config.Width + 1) * lvl.Config.Height)

	for y := 0; y < lvl.Config.Height; y++ {
		for x := 0; x < lvl.Config.Width; x++ {
			tile := lvl.Grid[y][x]
			pos := levelgen.Position{X: x, Y: y}

			switch {
			case pos == lvl.PlayerSpawn:
				sb.WriteByte('@')
			case pois[pos]:
				sb.WriteByte('P')
			case tile.Obstacle != "":
				sb.WriteByte('#')
			case tile.Decoration != "":
				sb.WriteByte('*')
			default:
				glyph, ok := terrainGlyphs[tile.Terrain]
				if !ok {
					glyph = '?'
				}
				sb.WriteByte(glyph)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (пустой кэш), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
