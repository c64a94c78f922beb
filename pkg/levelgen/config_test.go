package levelgen

import (
	"errors"
	"testing"
)

func validTestConfig() GenerationConfig {
	return GenerationConfig{
		Seed:            12345,
		Width:           72,
		Height:          48,
		POICount:        15,
		MinSpacing:      8,
		ObstacleDensity: 0.3,
		Theme:           ThemeRuins,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationConfig)
	}{
		{"zero width", func(c *GenerationConfig) { c.Width = 0 }},
		{"negative height", func(c *GenerationConfig) { c.Height = -5 }},
		{"zero poi count", func(c *GenerationConfig) { c.POICount = 0 }},
		{"zero spacing", func(c *GenerationConfig) { c.MinSpacing = 0 }},
		{"density above one", func(c *GenerationConfig) { c.ObstacleDensity = 1.5 }},
		{"negative density", func(c *GenerationConfig) { c.ObstacleDensity = -0.1 }},
		{"unordered thresholds", func(c *GenerationConfig) { c.Theme.TerrainThresholds = [3]float64{0.5, 0.3, 0.8} }},
		{"threshold above one", func(c *GenerationConfig) { c.Theme.TerrainThresholds = [3]float64{0.3, 0.5, 1.2} }},
		{"empty obstacle weights", func(c *GenerationConfig) { c.Theme.ObstacleWeights = nil }},
		{"empty name pool", func(c *GenerationConfig) { c.Theme.POINamePool = nil }},
		{"empty description pool", func(c *GenerationConfig) { c.Theme.POIDescriptionPool = nil }},
		{"no artifact pools", func(c *GenerationConfig) { c.Theme.ArtifactPools = ArtifactPools{} }},
		{
			"junk pool missing for tool",
			func(c *GenerationConfig) {
				c.Theme.ArtifactPools.Junk = map[string][]string{ToolBrush: {"x"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)

			err := cfg.withDefaults().Validate()
			var invalid *InvalidConfigError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidConfigError, got %v", err)
			}
		})
	}
}

func TestConfigValidate_OK(t *testing.T) {
	if err := validTestConfig().withDefaults().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

// Нулевая плотность препятствий освобождает тему от таблицы весов.
func TestConfigValidate_ZeroDensityAllowsEmptyWeights(t *testing.T) {
	cfg := validTestConfig()
	cfg.ObstacleDensity = 0
	cfg.Theme.ObstacleWeights = nil

	if err := cfg.withDefaults().Validate(); err != nil {
		t.Errorf("zero-density config rejected: %v", err)
	}
}

// Геометрическая выполнимость проверяется ДО сэмплинга: на точку уходит
// ~pi*minSpacing^2 площади, запрос сверх вместимости карты отбивается
// сразу как InsufficientPoints.
func TestConfigValidate_InfeasibleSpacing(t *testing.T) {
	cfg := validTestConfig()
	cfg.MinSpacing = 20 // pi*400*15 ≈ 18850 >> 72*48 = 3456

	err := cfg.withDefaults().Validate()
	var insufficient *InsufficientPointsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientPointsError, got %v", err)
	}
	if insufficient.Achieved != 0 {
		t.Errorf("fail-fast check must report Achieved = 0, got %d", insufficient.Achieved)
	}
}

func TestThemeResolvedDecorations(t *testing.T) {
	theme := ThemeConfig{
		DecorationPool:      []string{"fern", "anthill", "moss"},
		ExcludedDecorations: []string{"anthill"},
	}

	got := theme.resolvedDecorations()
	if len(got) != 2 {
		t.Fatalf("got %d decorations, want 2", len(got))
	}
	for _, d := range got {
		if d == "anthill" {
			t.Error("excluded decoration survived filtering")
		}
	}
}

func TestThemeToolCategories_SortedAndStable(t *testing.T) {
	tools := ThemeRuins.toolCategories()
	if len(tools) != 3 {
		t.Fatalf("got %d tools, want 3", len(tools))
	}
	// Отсортированный порядок — часть контракта детерминизма
	if tools[0] != ToolBrush || tools[1] != ToolPickaxe || tools[2] != ToolShovel {
		t.Errorf("tools not sorted: %v", tools)
	}
}
