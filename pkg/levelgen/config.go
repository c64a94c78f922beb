package levelgen

import (
	"fmt"
	"math"
	"sort"
)

// Дефолты генерации
const (
	DefaultMaxAttempts           = 30  // кандидатов на активную точку сэмплера
	DefaultSpawnSafeRadius       = 3.0 // радиус зоны отчуждения вокруг спавна
	DefaultDiscoveryRadius       = 2   // с какого расстояния POI подсвечивается игроку
	DefaultMaxValidationAttempts = 10  // лимит цикла validate -> repair

	// Масштабы шумовых полей. Поля независимы: у террейна решетка
	// засеяна сидом уровня, у препятствий — сидом уровня + 1.
	terrainNoiseScale  = 0.08
	obstacleNoiseScale = 0.25
)

// GenerationConfig — неизменяемый вход Generate. Передается значением,
// генератор никогда не пишет в него обратно.
type GenerationConfig struct {
	Seed   int64
	Width  int
	Height int

	POICount    int
	MinSpacing  int
	MaxAttempts int // кандидатов на активную точку (0 = дефолт)

	ObstacleDensity float64 // [0, 1]

	SpawnSafeRadius       float64 // 0 = дефолт
	DiscoveryRadius       int     // 0 = дефолт
	MaxValidationAttempts int     // 0 = дефолт

	Theme ThemeConfig
}

// ArtifactPools — пулы артефактов по категориям инструмента.
// Ключ внешней мапы — инструмент (brush/shovel/pickaxe), значение —
// список ID артефактов, которые этим инструментом добываются.
type ArtifactPools struct {
	Valuable map[string][]string
	Junk     map[string][]string
}

// ThemeConfig — тематический бандл уровня: пороги террейна, веса
// препятствий, пулы артефактов и текстовки. Передается как значение
// внутри конфига, никаких глобальных синглтонов — несколько генераторов
// с разными темами спокойно работают параллельно.
type ThemeConfig struct {
	Name string

	// TerrainThresholds — три упорядоченных порога на нормализованном
	// шуме [0,1]: < t0 камень, < t1 земля, < t2 трава, иначе песок.
	TerrainThresholds [3]float64

	ObstacleWeights []Weighted

	ArtifactPools  ArtifactPools
	ValuableChance float64 // вероятность ценного артефакта в POI

	POINamePool        []string
	POIDescriptionPool []string

	DecorationChance    float64
	DecorationPool      []string
	ExcludedDecorations []string
}

// toolCategories возвращает отсортированный список инструментов темы.
// Сортировка обязательна: порядок итерации по мапе в Go случаен, а выбор
// инструмента идет через поток RNG и обязан быть воспроизводимым.
func (t ThemeConfig) toolCategories() []string {
	tools := make([]string, 0, len(t.ArtifactPools.Valuable))
	for tool := range t.ArtifactPools.Valuable {
		tools = append(tools, tool)
	}
	sort.Strings(tools)
	return tools
}

// resolvedDecorations — пул декораций за вычетом исключенных.
func (t ThemeConfig) resolvedDecorations() []string {
	if len(t.ExcludedDecorations) == 0 {
		return t.DecorationPool
	}
	excluded := make(map[string]bool, len(t.ExcludedDecorations))
	for _, d := range t.ExcludedDecorations {
		excluded[d] = true
	}
	out := make([]string, 0, len(t.DecorationPool))
	for _, d := range t.DecorationPool {
		if !excluded[d] {
			out = append(out, d)
		}
	}
	return out
}

// withDefaults заполняет нулевые необязательные поля.
func (c GenerationConfig) withDefaults() GenerationConfig {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.SpawnSafeRadius == 0 {
		c.SpawnSafeRadius = DefaultSpawnSafeRadius
	}
	if c.DiscoveryRadius == 0 {
		c.DiscoveryRadius = DefaultDiscoveryRadius
	}
	if c.MaxValidationAttempts == 0 {
		c.MaxValidationAttempts = DefaultMaxValidationAttempts
	}
	return c
}

// Validate проверяет конфиг до старта генерации.
//
// Отдельно от структурных проверок выполняется проверка геометрической
// выполнимости: на каждую точку Пуассона уходит ~pi*minSpacing^2 площади,
// и если pi*minSpacing^2*poiCount превышает площадь карты, сэмплер
// гарантированно не доберет точки. В этом случае падаем сразу с
// InsufficientPoints, а не крутимся до исчерпания активного списка.
func (c GenerationConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &InvalidConfigError{Reason: fmt.Sprintf("dimensions must be positive, got %dx%d", c.Width, c.Height)}
	}
	if c.POICount <= 0 {
		return &InvalidConfigError{Reason: "poiCount must be positive"}
	}
	if c.MinSpacing <= 0 {
		return &InvalidConfigError{Reason: "minSpacing must be positive"}
	}
	if c.ObstacleDensity < 0 || c.ObstacleDensity > 1 {
		return &InvalidConfigError{Reason: fmt.Sprintf("obstacleDensity must be in [0,1], got %v", c.ObstacleDensity)}
	}

	t := c.Theme
	prev := 0.0
	for i, th := range t.TerrainThresholds {
		if th < prev || th > 1 {
			return &InvalidConfigError{Reason: fmt.Sprintf("terrain thresholds must be ordered within [0,1], threshold %d = %v", i, th)}
		}
		prev = th
	}
	if c.ObstacleDensity > 0 && len(t.ObstacleWeights) == 0 {
		return &InvalidConfigError{Reason: "obstacle weights pool is empty"}
	}
	if len(t.POINamePool) == 0 {
		return &InvalidConfigError{Reason: "poi name pool is empty"}
	}
	if len(t.POIDescriptionPool) == 0 {
		return &InvalidConfigError{Reason: "poi description pool is empty"}
	}
	if len(t.ArtifactPools.Valuable) == 0 {
		return &InvalidConfigError{Reason: "valuable artifact pools are empty"}
	}
	for _, tool := range t.toolCategories() {
		if len(t.ArtifactPools.Valuable[tool]) == 0 {
			return &InvalidConfigError{Reason: "empty valuable pool for tool " + tool}
		}
		if len(t.ArtifactPools.Junk[tool]) == 0 {
			return &InvalidConfigError{Reason: "empty junk pool for tool " + tool}
		}
	}

	// Проверка выполнимости (см. выше)
	spacing := float64(c.MinSpacing)
	required := math.Pi * spacing * spacing * float64(c.POICount)
	area := float64(c.Width) * float64(c.Height)
	if required > area {
		return &InsufficientPointsError{Target: c.POICount, Achieved: 0}
	}

	return nil
}
