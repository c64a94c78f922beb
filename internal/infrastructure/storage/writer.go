package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `EXPS` // 4 байта
	Version1    uint32 = 1
)

// SaveState — все, что нужно для восстановления экспедиции.
// Сами уровни не сохраняются: они детерминированно пересчитываются
// из мастер-сида, файл хранит только сид и глубину.
type SaveState struct {
	MasterSeed int64
	// Level — самый глубокий достигнутый уровень (-1, если ни одного).
	Level int
	// Timestamp Unix milliseconds момента сохранения.
	Timestamp int64
}

// SaveFileHeader — это точное представление файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type SaveFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	MasterSeed int64   // 8 байт
	Level      int32   // 4 байта
	Timestamp  int64   // 8 байт
}

type SaveService struct {
	SaveDir string
}

func NewSaveService(dir string) *SaveService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &SaveService{SaveDir: dir}
}

func (s *SaveService) Save(state SaveState) (string, error) {
	filename := fmt.Sprintf("expedition_%d_%d.exps", state.MasterSeed, state.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, state); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, state SaveState) error {
	header := SaveFileHeader{
		Version:    Version1,
		MasterSeed: state.MasterSeed,
		Level:      int32(state.Level),
		Timestamp:  state.Timestamp,
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	// Пишем структуру целиком, одним вызовом
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	return nil
}
