package levelgen

import "fmt"

// Таксономия ошибок генерации. Все три фатальны для вызова Generate:
// частичного или деградированного уровня не существует, вызывающий
// обязан поменять сид/конфиг или показать ошибку пользователю.

// InvalidConfigError — конфиг не прошел валидацию (размеры, пулы, пороги).
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "levelgen: invalid config: " + e.Reason
}

// InsufficientPointsError — сэмплер не смог разместить нужное число точек.
//
// Это ошибка ВЫПОЛНИМОСТИ, а не случайная неудача: на точку уходит
// примерно pi*minSpacing^2 площади, и если карта столько не вмещает,
// перезапуск с другим сидом не поможет.
type InsufficientPointsError struct {
	Target   int
	Achieved int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("levelgen: insufficient points: placed %d of %d (spacing infeasible for map area)", e.Achieved, e.Target)
}

// ValidationExhaustedError — связность не восстановлена за лимит попыток
// validate->repair. Сигнализирует несовместимую пару
// "плотность препятствий / разброс точек".
type ValidationExhaustedError struct {
	Attempts    int
	Unreachable int
}

func (e *ValidationExhaustedError) Error() string {
	return fmt.Sprintf("levelgen: connectivity validation exhausted after %d attempts (%d POIs unreachable)", e.Attempts, e.Unreachable)
}
