package api

import "errors"

// Максимальный номер уровня, который сервер согласен генерировать по
// запросу. Защита от клиента, раздувающего кэш произвольными номерами.
const MaxLevelNumber = 9999

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p LevelPayload) Validate() error {
	if p.Number < 0 {
		return errors.New("level number cannot be negative")
	}
	if p.Number > MaxLevelNumber {
		return errors.New("level number too large")
	}
	return nil
}
