package levelgen

// Встроенный каталог тем. Темы — обычные значения: движок передает их
// внутрь Generate через конфиг, глобального мутабельного состояния нет,
// поэтому тесты и несколько генераторов с разными каталогами спокойно
// живут рядом.

// Категории инструментов
const (
	ToolBrush   = "brush"
	ToolShovel  = "shovel"
	ToolPickaxe = "pickaxe"
)

// --- ТЕМА: ЗАБРОШЕННЫЕ РУИНЫ ---

var ThemeRuins = ThemeConfig{
	Name:              "ruins",
	TerrainThresholds: [3]float64{0.35, 0.55, 0.78},
	ObstacleWeights: []Weighted{
		{Value: "boulder", Weight: 5},
		{Value: "column", Weight: 3},
		{Value: "rubble", Weight: 2},
	},
	ArtifactPools: ArtifactPools{
		Valuable: map[string][]string{
			ToolBrush:   {"mosaic_fragment", "fresco_shard", "bronze_mirror"},
			ToolShovel:  {"amphora", "coin_hoard", "votive_figurine"},
			ToolPickaxe: {"marble_relief", "sealed_urn", "gilded_capital"},
		},
		Junk: map[string][]string{
			ToolBrush:   {"plaster_flake", "faded_tile"},
			ToolShovel:  {"broken_pot", "rusty_nail"},
			ToolPickaxe: {"cracked_brick", "mortar_lump"},
		},
	},
	ValuableChance: 0.3,
	POINamePool: []string{
		"Обвалившаяся колоннада",
		"Древний алтарь",
		"Затопленный подвал",
		"Фундамент сторожевой башни",
		"Разбитая мостовая",
	},
	POIDescriptionPool: []string{
		"Из-под слоя пыли проступает кладка, которой не меньше тысячи лет.",
		"Камни здесь уложены слишком ровно, чтобы это была случайность.",
		"Местные обходят это место стороной и, похоже, не зря.",
		"Под ногами глухо отзывается пустота.",
	},
	DecorationChance:    0.08,
	DecorationPool:      []string{"cracked_slab", "weeds", "pottery_shards", "old_bones"},
	ExcludedDecorations: []string{},
}

// --- ТЕМА: ПЕСЧАНЫЕ ДЮНЫ ---

var ThemeDunes = ThemeConfig{
	Name:              "dunes",
	TerrainThresholds: [3]float64{0.2, 0.35, 0.55},
	ObstacleWeights: []Weighted{
		{Value: "dune_rock", Weight: 5},
		{Value: "cactus", Weight: 3},
		{Value: "dry_bush", Weight: 2},
	},
	ArtifactPools: ArtifactPools{
		Valuable: map[string][]string{
			ToolBrush:   {"scarab_amulet", "painted_ostracon"},
			ToolShovel:  {"canopic_jar", "golden_mask", "trade_ledger"},
			ToolPickaxe: {"obsidian_blade", "stela_fragment"},
		},
		Junk: map[string][]string{
			ToolBrush:   {"sand_polished_glass", "dried_reed"},
			ToolShovel:  {"camel_bone", "chipped_bowl"},
			ToolPickaxe: {"sandstone_chunk", "salt_crust"},
		},
	},
	ValuableChance: 0.3,
	POINamePool: []string{
		"Занесенный караван-сарай",
		"Высохший колодец",
		"Кости огромного зверя",
		"Осыпавшийся бархан",
	},
	POIDescriptionPool: []string{
		"Ветер то прячет, то снова обнажает что-то темное под песком.",
		"Караванщики рассказывали об этом месте шепотом.",
		"Песок здесь слежался так плотно, будто его утрамбовали.",
	},
	DecorationChance:    0.05,
	DecorationPool:      []string{"ripple_sand", "sun_bleached_bone", "dry_grass"},
	ExcludedDecorations: []string{},
}

// --- ТЕМА: ЛЕСНАЯ ГЛУШЬ ---

var ThemeForest = ThemeConfig{
	Name:              "forest",
	TerrainThresholds: [3]float64{0.25, 0.45, 0.85},
	ObstacleWeights: []Weighted{
		{Value: "tree", Weight: 6},
		{Value: "fallen_log", Weight: 2},
		{Value: "thicket", Weight: 2},
	},
	ArtifactPools: ArtifactPools{
		Valuable: map[string][]string{
			ToolBrush:   {"runic_bark", "amber_pendant"},
			ToolShovel:  {"iron_cauldron", "silver_torc", "hunter_cache"},
			ToolPickaxe: {"meteorite_shard", "ore_sample"},
		},
		Junk: map[string][]string{
			ToolBrush:   {"moss_clump", "beetle_shell"},
			ToolShovel:  {"rotten_root", "clay_lump"},
			ToolPickaxe: {"flint_chip", "granite_pebble"},
		},
	},
	ValuableChance: 0.3,
	POINamePool: []string{
		"Курган под старым дубом",
		"Охотничья землянка",
		"Поляна стоячих камней",
		"Заросшее кострище",
	},
	POIDescriptionPool: []string{
		"Деревья расступаются здесь неестественно ровным кругом.",
		"Под мхом угадываются очертания чего-то рукотворного.",
		"Сюда давно никто не заходил, и лес успел все спрятать.",
	},
	DecorationChance:    0.12,
	DecorationPool:      []string{"mushrooms", "fern", "moss_stone", "anthill"},
	ExcludedDecorations: []string{"anthill"}, // муравейники пока не отрисованы клиентом
}

// Themes — каталог всех встроенных тем в порядке ротации по уровням.
var Themes = []ThemeConfig{ThemeRuins, ThemeDunes, ThemeForest}

// ThemeByName возвращает тему по имени (для отладочных ручек сервера).
func ThemeByName(name string) (ThemeConfig, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeConfig{}, false
}
