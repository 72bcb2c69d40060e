package services

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// SignalService загружает файлы сигналов и разбирает соглашение об именовании.
// Частота дискретизации в файлах не хранится и задается конфигурацией.
type SignalService struct{}

// NewSignalService создает сервис загрузки сигналов
func NewSignalService() *SignalService {
	return &SignalService{}
}

// SubjectType определяет тип субъекта по токену в имени файла:
// fecg -> fetal, mecg -> maternal. Файлы без распознанного токена
// пропускаются вызывающей стороной с предупреждением.
func (ss *SignalService) SubjectType(filename string) (string, bool) {
	switch {
	case strings.Contains(filename, "fecg"):
		return "fetal", true
	case strings.Contains(filename, "mecg"):
		return "maternal", true
	default:
		return "", false
	}
}

// IsSignalFile проверяет, что файл содержит сигнал в поддерживаемом формате
func (ss *SignalService) IsSignalFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".json" || ext == ".f64"
}

// LoadSignal читает массив амплитуд из файла.
// Поддерживаются .json (массив чисел) и .f64 (raw little-endian float64).
func (ss *SignalService) LoadSignal(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла сигнала: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var signal []float64
		if err := json.Unmarshal(data, &signal); err != nil {
			return nil, fmt.Errorf("ошибка парсинга сигнала %s: %w", filepath.Base(path), err)
		}
		return signal, nil
	case ".f64":
		if len(data)%8 != 0 {
			return nil, fmt.Errorf("некорректная длина бинарного сигнала %s: %d байт", filepath.Base(path), len(data))
		}
		signal := make([]float64, len(data)/8)
		for i := range signal {
			bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
			signal[i] = math.Float64frombits(bits)
		}
		return signal, nil
	default:
		return nil, fmt.Errorf("неподдерживаемый формат сигнала: %s", filepath.Ext(path))
	}
}
