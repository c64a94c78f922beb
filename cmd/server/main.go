package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expedition-server/internal/engine"
	"expedition-server/internal/infrastructure/storage"
	"expedition-server/internal/server"
	"expedition-server/internal/version"
	"expedition-server/pkg/logger"
	"expedition-server/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var phrase string
	var resumePath string
	var saveDir string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master expedition seed (0 for random)")
	flag.StringVar(&phrase, "phrase", "", "Seed phrase; hashed into the master seed (overrides -seed)")
	flag.StringVar(&resumePath, "resume", "", "Path to .exps save file to resume from")
	flag.StringVar(&saveDir, "savedir", "saves", "Directory for save files")
	flag.Parse()

	logger.Log.Info("Starting Expedition Server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	cfg.SaveDir = saveDir

	saves := storage.NewSaveService(cfg.SaveDir)

	switch {
	case resumePath != "":
		state, err := saves.Load(resumePath)
		if err != nil {
			logger.Log.Fatal("Failed to load save: ", err)
		}
		cfg.Seed = state.MasterSeed
		logger.Log.Infof("💿 Resuming expedition: seed %d, depth %d", state.MasterSeed, state.Level)

	case phrase != "":
		cfg.Seed = utils.StringToSeed(phrase)
		logger.Log.Infof("🎲 Seed phrase %q -> Master Seed: %d", phrase, cfg.Seed)

	case seed != 0:
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)

	default:
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("EXP_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сохраняем состояние экспедиции
	path, err := saves.Save(storage.SaveState{
		MasterSeed: gameService.MasterSeed(),
		Level:      gameService.MaxGeneratedLevel(),
		Timestamp:  time.Now().UnixMilli(),
	})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to write save file")
	} else {
		logger.Log.Infof("Saved expedition state to %s", path)
	}

	logger.Log.Info("Done.")
}
