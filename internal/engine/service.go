package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"expedition-server/internal/network"
	"expedition-server/pkg/api"
	"expedition-server/pkg/levelgen"
	"expedition-server/pkg/logger"
)

// Параметры уровней экспедиции. Единые для всех уровней: различия между
// уровнями дает сид и ротация тем, а не геометрия.
const (
	levelWidth      = 72
	levelHeight     = 48
	levelPOICount   = 15
	levelMinSpacing = 8

	obstacleDensity = 0.3
)

// GameService владеет мастер-сидом и кэшем сгенерированных уровней.
// Уровни детерминированны, поэтому кэш — чистая оптимизация: потеря
// кэша (рестарт) ничего не меняет для клиентов.
type GameService struct {
	cfg Config
	Hub *network.Broadcaster

	mu     sync.Mutex
	levels map[int]*levelgen.Level

	log *logrus.Entry
}

func NewService(cfg Config) *GameService {
	return &GameService{
		cfg:    cfg,
		Hub:    network.NewBroadcaster(),
		levels: make(map[int]*levelgen.Level),
		log:    logger.WithComponent("engine").WithField("master_seed", cfg.Seed),
	}
}

// MasterSeed возвращает мастер-зерно экспедиции.
func (s *GameService) MasterSeed() int64 {
	return s.cfg.Seed
}

// levelConfig собирает конфиг генерации для уровня с номером n.
// Сид уровня = мастер-сид + n; темы ротируются по кругу.
func (s *GameService) levelConfig(n int) levelgen.GenerationConfig {
	return levelgen.GenerationConfig{
		Seed:            s.cfg.Seed + int64(n),
		Width:           levelWidth,
		Height:          levelHeight,
		POICount:        levelPOICount,
		MinSpacing:      levelMinSpacing,
		ObstacleDensity: obstacleDensity,
		Theme:           levelgen.Themes[n%len(levelgen.Themes)],
	}
}

// LevelFor возвращает уровень с номером n, генерируя его при первом
// обращении.
func (s *GameService) LevelFor(n int) (*levelgen.Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lvl, ok := s.levels[n]; ok {
		return lvl, nil
	}

	lvl, err := levelgen.Generate(s.levelConfig(n))
	if err != nil {
		return nil, fmt.Errorf("generate level %d: %w", n, err)
	}

	s.levels[n] = lvl
	s.log.WithFields(logrus.Fields{
		"level": n,
		"seed":  lvl.Metadata.Seed,
		"theme": levelgen.Themes[n%len(levelgen.Themes)].Name,
	}).Info("Level generated")

	return lvl, nil
}

// Regenerate сбрасывает кэш уровня n и строит его заново.
// Сид уровня не меняется, так что результат совпадает с прежним;
// команда нужна при правке тем/констант в dev-режиме, чтобы раздать
// клиентам свежую сборку без рестарта сервера.
func (s *GameService) Regenerate(n int) (*levelgen.Level, error) {
	s.mu.Lock()
	delete(s.levels, n)
	s.mu.Unlock()

	lvl, err := s.LevelFor(n)
	if err != nil {
		return nil, err
	}

	s.Hub.Broadcast(api.ServerMessage{
		Type:      api.MessageAnnounce,
		Message:   fmt.Sprintf("level %d regenerated", n),
		Timestamp: time.Now().UnixMilli(),
	})
	return lvl, nil
}

// CachedLevel возвращает уровень из кэша, не генерируя его.
func (s *GameService) CachedLevel(n int) (*levelgen.Level, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lvl, ok := s.levels[n]
	return lvl, ok
}

// GeneratedLevels возвращает отсортированные номера уровней в кэше.
func (s *GameService) GeneratedLevels() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	nums := make([]int, 0, len(s.levels))
	for n := range s.levels {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// MaxGeneratedLevel возвращает самый глубокий сгенерированный уровень
// (-1, если кэш пуст). Пишется в файл сохранения.
func (s *GameService) MaxGeneratedLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := -1
	for n := range s.levels {
		if n > max {
			max = n
		}
	}
	return max
}

// --- ОБРАБОТКА КОМАНД ---

// HandleCommand выполняет команду клиента. Ответы уходят через Hub в
// личный канал сессии, поэтому метод безопасно звать из readPump
// любого клиента.
func (s *GameService) HandleCommand(clientID string, cmd api.ClientCommand) {
	switch cmd.Action {
	case api.ActionGetLevel:
		payload, err := parseLevelPayload(cmd.Payload)
		if err != nil {
			s.sendError(clientID, err.Error())
			return
		}
		lvl, err := s.LevelFor(payload.Number)
		if err != nil {
			s.sendError(clientID, err.Error())
			return
		}
		s.sendLevel(clientID, payload.Number, lvl)

	case api.ActionRegenerate:
		payload, err := parseLevelPayload(cmd.Payload)
		if err != nil {
			s.sendError(clientID, err.Error())
			return
		}
		lvl, err := s.Regenerate(payload.Number)
		if err != nil {
			s.sendError(clientID, err.Error())
			return
		}
		s.sendLevel(clientID, payload.Number, lvl)

	default:
		s.log.WithField("action", cmd.Action).Warn("Unknown action")
		s.sendError(clientID, "unknown action: "+cmd.Action)
	}
}

func parseLevelPayload(raw json.RawMessage) (api.LevelPayload, error) {
	var p api.LevelPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return p, fmt.Errorf("bad payload: %w", err)
		}
	}
	return p, p.Validate()
}

func (s *GameService) sendLevel(clientID string, number int, lvl *levelgen.Level) {
	view := BuildLevelView(number, lvl)
	s.Hub.SendTo(clientID, api.ServerMessage{
		Type:      api.MessageLevel,
		Level:     &view,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (s *GameService) sendError(clientID, msg string) {
	s.Hub.SendTo(clientID, api.ServerMessage{
		Type:      api.MessageError,
		Message:   msg,
		Timestamp: time.Now().UnixMilli(),
	})
}
