package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

func (s *SaveService) Load(path string) (*SaveState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*SaveState, error) {
	// Читаем заголовок целиком
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	return &SaveState{
		MasterSeed: header.MasterSeed,
		Level:      int(header.Level),
		Timestamp:  header.Timestamp,
	}, nil
}
