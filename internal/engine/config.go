package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно экспедиции. От него зависят все уровни.
	// Level N Seed = MasterSeed + N
	Seed int64

	// SaveDir каталог для файлов сохранений
	SaveDir string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:    time.Now().UnixNano(),
		SaveDir: "saves",
	}
}
