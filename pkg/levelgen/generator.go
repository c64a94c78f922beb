package levelgen

import (
	"fmt"
	"math"
	"time"

	"expedition-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Phase — фаза конечного автомата генерации.
type Phase uint8

const (
	PhaseInit Phase = iota
	PhaseTerrain
	PhasePOIPlacement
	PhaseSpawnPlacement
	PhaseObstaclePlacement
	PhaseValidation
	PhaseFinalization
	PhaseComplete
)

var phaseNames = [...]string{
	"Init", "Terrain", "POIPlacement", "SpawnPlacement",
	"ObstaclePlacement", "Validation", "Finalization", "Complete",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// generationState — единственное мутабельное состояние генерации.
//
// Им монопольно владеет Generate: наружу состояние не утекает, фазы
// читают и пишут его строго по очереди, а в финализации оно замораживается
// в неизменяемый Level. Никакого внутреннего параллелизма: каждая фаза
// зависит от полного результата предыдущей, и поток RNG строго
// последовательный.
type generationState struct {
	cfg GenerationConfig

	rng           *SeededRandom
	terrainNoise  *Noise
	obstacleNoise *Noise

	phase Phase
	log   *logrus.Entry

	grid     [][]Tile
	pois     []POI
	spawn    Position
	reserved map[int]bool // индексы y*width+x, закрытые для препятствий

	validationAttempts int
}

// enterPhase переводит автомат в следующую фазу. Пропуск или перестановка
// фаз — ошибка программиста, ловим ее сразу.
func (st *generationState) enterPhase(next Phase) error {
	if next != st.phase+1 {
		return fmt.Errorf("levelgen: illegal phase transition %s -> %s", st.phase, next)
	}
	st.phase = next
	st.log.WithField("phase", next.String()).Debug("Entering generation phase.")
	return nil
}

// Generate прогоняет полный конвейер и возвращает готовый уровень.
//
// Идентичный конфиг дает побитово идентичный результат: сетку, список
// POI (порядок, позиции, тексты, артефакты) и точку спавна. Единственное
// недетерминированное поле — Metadata.GeneratedAt.
//
// При любой ошибке уровень не возвращается вовсе: частично связных
// уровней не бывает.
func Generate(cfg GenerationConfig) (*Level, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := &generationState{
		cfg:           cfg,
		rng:           NewSeededRandom(cfg.Seed),
		terrainNoise:  NewNoise(cfg.Seed),
		obstacleNoise: NewNoise(cfg.Seed + 1),
		phase:         PhaseInit,
		reserved:      make(map[int]bool),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "levelgen",
			"seed":      cfg.Seed,
			"theme":     cfg.Theme.Name,
		}),
	}

	// Фазы идут в жестком порядке, каждая потребляет состояние предыдущей.
	if err := st.enterPhase(PhaseTerrain); err != nil {
		return nil, err
	}
	st.runTerrain()

	if err := st.enterPhase(PhasePOIPlacement); err != nil {
		return nil, err
	}
	if err := st.runPOIPlacement(); err != nil {
		return nil, err
	}

	if err := st.enterPhase(PhaseSpawnPlacement); err != nil {
		return nil, err
	}
	st.runSpawnPlacement()

	if err := st.enterPhase(PhaseObstaclePlacement); err != nil {
		return nil, err
	}
	if err := st.runObstaclePlacement(); err != nil {
		return nil, err
	}

	if err := st.enterPhase(PhaseValidation); err != nil {
		return nil, err
	}
	if err := st.runValidation(); err != nil {
		return nil, err
	}

	if err := st.enterPhase(PhaseFinalization); err != nil {
		return nil, err
	}
	level := st.finalize()

	if err := st.enterPhase(PhaseComplete); err != nil {
		return nil, err
	}

	st.log.WithFields(logrus.Fields{
		"pois":                len(level.POIs),
		"validation_attempts": level.Metadata.ValidationAttempts,
	}).Info("Level generated.")

	return level, nil
}

// plannedSpawn — место будущего спавна. Известно до фазы SpawnPlacement,
// потому что зона отчуждения вокруг него нужна уже сэмплеру POI.
func (st *generationState) plannedSpawn() Position {
	return Position{X: st.cfg.Width / 2, Y: st.cfg.Height / 2}
}

// runPOIPlacement — фаза POIPlacement: синий шум + метаданные.
//
// Метаданные каждой точки (инструмент, ценность, артефакт, имя,
// описание) тянутся из потока RNG в фиксированном порядке сразу после
// сэмплинга — это часть контракта детерминизма.
func (st *generationState) runPOIPlacement() error {
	zones := []ExclusionZone{{Center: st.plannedSpawn(), Radius: st.cfg.SpawnSafeRadius}}

	sampler := NewPoissonDiscSampler(st.cfg.Width, st.cfg.Height, st.cfg.MinSpacing, st.cfg.MaxAttempts, zones, st.rng)
	points, err := sampler.Sample(st.cfg.POICount)
	if err != nil {
		return err
	}

	tools := st.cfg.Theme.toolCategories()

	st.pois = make([]POI, 0, len(points))
	for i, pos := range points {
		tool, err := Choice(st.rng, tools)
		if err != nil {
			return err
		}

		isValuable := st.rng.Next() < st.cfg.Theme.ValuableChance
		pool := st.cfg.Theme.ArtifactPools.Junk[tool]
		if isValuable {
			pool = st.cfg.Theme.ArtifactPools.Valuable[tool]
		}
		artifactID, err := Choice(st.rng, pool)
		if err != nil {
			return err
		}

		name, err := Choice(st.rng, st.cfg.Theme.POINamePool)
		if err != nil {
			return err
		}
		description, err := Choice(st.rng, st.cfg.Theme.POIDescriptionPool)
		if err != nil {
			return err
		}

		st.pois = append(st.pois, POI{
			ID:              fmt.Sprintf("poi_%d", i),
			Pos:             pos,
			Tool:            tool,
			Name:            name,
			Description:     description,
			DiscoveryRadius: st.cfg.DiscoveryRadius,
			Artifact:        Artifact{ID: artifactID, IsValuable: isValuable},
		})

		// Тайл POI резервируется: фаза препятствий его не тронет
		st.reserved[pos.Y*st.cfg.Width+pos.X] = true
	}

	return nil
}

// runSpawnPlacement — фаза SpawnPlacement: фиксация спавна и
// резервирование безопасной зоны вокруг него.
func (st *generationState) runSpawnPlacement() {
	st.spawn = st.plannedSpawn()

	for y := 0; y < st.cfg.Height; y++ {
		for x := 0; x < st.cfg.Width; x++ {
			dx := float64(x - st.spawn.X)
			dy := float64(y - st.spawn.Y)
			if math.Sqrt(dx*dx+dy*dy) <= st.cfg.SpawnSafeRadius {
				st.reserved[y*st.cfg.Width+x] = true
			}
		}
	}
}

// runValidation — фаза Validation: цикл validate -> repair.
//
// Одна заливка на попытку; при недостижимых POI вызывается ремонт и
// валидация повторяется. Превышение лимита — фатальная ошибка генерации,
// частично связный уровень наружу не отдается никогда.
func (st *generationState) runValidation() error {
	for {
		st.validationAttempts++

		unreachable := findUnreachablePOIs(st.grid, st.spawn, st.pois)
		if len(unreachable) == 0 {
			return nil
		}

		if st.validationAttempts >= st.cfg.MaxValidationAttempts {
			return &ValidationExhaustedError{
				Attempts:    st.validationAttempts,
				Unreachable: len(unreachable),
			}
		}

		st.log.WithFields(logrus.Fields{
			"attempt":     st.validationAttempts,
			"unreachable": len(unreachable),
		}).Debug("Connectivity validation failed, repairing.")

		st.repairConnectivity(unreachable)
	}
}

// finalize — фаза Finalization: заморозка состояния в Level.
func (st *generationState) finalize() *Level {
	return &Level{
		Config: LevelInfo{
			Seed:     st.cfg.Seed,
			Width:    st.cfg.Width,
			Height:   st.cfg.Height,
			POICount: st.cfg.POICount,
		},
		Grid:        st.grid,
		POIs:        st.pois,
		PlayerSpawn: st.spawn,
		Metadata: Metadata{
			Seed:               st.cfg.Seed,
			ValidationAttempts: st.validationAttempts,
			GeneratedAt:        time.Now().UnixMilli(),
		},
	}
}
