package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений сервера.
const (
	MessageLevel    = "LEVEL"    // снимок уровня в ответ на GET_LEVEL
	MessageAnnounce = "ANNOUNCE" // широковещательное уведомление (например, о перегенерации)
	MessageError    = "ERROR"    // отказ с человекочитаемой причиной
)

// ServerMessage это корневой объект, который сервер отправляет клиенту.
// Уровень присутствует только в сообщениях типа LEVEL.
type ServerMessage struct {
	Type string `json:"type"`

	// Level полный снимок уровня. Клиент рендерит его целиком:
	// инкрементальных обновлений протокол не предусматривает,
	// уровень детерминированно пересчитывается из сида.
	Level *LevelView `json:"level,omitempty"`

	// Message текст для ANNOUNCE и ERROR.
	Message string `json:"message,omitempty"`

	// Timestamp Unix milliseconds на момент формирования сообщения.
	Timestamp int64 `json:"timestamp"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// LevelView это DTO полного уровня, видимого клиенту.
type LevelView struct {
	// Number порядковый номер уровня в экспедиции (0-based).
	Number int `json:"number"`

	// Theme название темы, по которой сгенерирован уровень.
	Theme string `json:"theme"`

	Grid  GridMeta     `json:"grid"`
	Tiles []TileView   `json:"tiles"`
	POIs  []POIView    `json:"pois"`
	Spawn PositionView `json:"spawn"`

	// GeneratedAt Unix milliseconds момента генерации.
	GeneratedAt int64 `json:"generatedAt"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Terrain категория поверхности (stone, dirt, grass, sand).
	Terrain string `json:"terrain"`

	// SpriteVariant номер варианта спрайта 0..3 для визуального разнообразия.
	SpriteVariant int `json:"spriteVariant"`

	Walkable bool `json:"walkable"`

	// Obstacle тип препятствия. Пустая строка — тайл свободен.
	Obstacle string `json:"obstacle,omitempty"`

	// Decoration косметическое украшение. Не влияет на проходимость.
	Decoration string `json:"decoration,omitempty"`
}

// PositionView координаты тайла.
type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// POIView это DTO точки интереса.
// Артефакт (и его ценность) клиенту НЕ отправляется: клиент узнает
// содержимое только после успешной раскопки, иначе возможен спойлер
// простым чтением трафика.
type POIView struct {
	ID  string       `json:"id"`
	Pos PositionView `json:"pos"`

	// Tool инструмент, которым нужно работать на этой точке.
	Tool string `json:"tool"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// DiscoveryRadius радиус в тайлах, в котором точка подсвечивается игроку.
	DiscoveryRadius int `json:"discoveryRadius"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// Действия клиента.
const (
	ActionLogin      = "LOGIN"
	ActionGetLevel   = "GET_LEVEL"
	ActionRegenerate = "REGENERATE"
)

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии. Обязателен только для первого
	// сообщения LOGIN; пустой токен означает анонимную сессию,
	// сервер выдаст случайный ID.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// LevelPayload используется для действий, адресующих уровень по номеру
// (GET_LEVEL, REGENERATE).
type LevelPayload struct {
	Number int `json:"number"`
}
