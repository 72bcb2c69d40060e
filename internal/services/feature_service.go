package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ecg-postprocessing/config"
	"ecg-postprocessing/internal/delineation"
	"ecg-postprocessing/internal/dsp"
	"ecg-postprocessing/internal/features"
	"ecg-postprocessing/internal/models"
	"ecg-postprocessing/pkg/utils"
)

var (
	// ErrRecordNotFound файл признаков отсутствует
	ErrRecordNotFound = errors.New("файл признаков не найден")
	// ErrRecordMalformed файл признаков не парсится
	ErrRecordMalformed = errors.New("файл признаков поврежден")
	// ErrSignalNotFound файл сигнала отсутствует
	ErrSignalNotFound = errors.New("файл сигнала не найден")
)

// FeatureService обслуживает запросы API: расчет признаков по требованию
// и чтение данных для вьювера
type FeatureService struct {
	cfg     *config.Config
	oracle  delineation.Oracle
	signals *SignalService
}

// NewFeatureService создает сервис признаков
func NewFeatureService(cfg *config.Config, oracle delineation.Oracle, signals *SignalService) *FeatureService {
	return &FeatureService{
		cfg:     cfg,
		oracle:  oracle,
		signals: signals,
	}
}

// ComputeFeatures прогоняет сигнал через пайплайн с переопределенной
// частотой дискретизации (если fsHz > 0)
func (s *FeatureService) ComputeFeatures(ctx context.Context, signal []float64, fsHz float64, subjectType string) models.FeatureSummary {
	pipelineCfg := s.cfg.Pipeline
	if fsHz > 0 {
		pipelineCfg.SampleRate = fsHz
	}

	extractor := features.NewFeatureExtractor(pipelineCfg, s.oracle)
	summary := extractor.Extract(ctx, signal)
	summary.SubjectType = subjectType
	return summary
}

// GetRecord читает сохраненный файл признаков для вьювера.
// Отсутствие файла и ошибка парсинга различаются: вьювер показывает
// разные предупреждения, не падая ни в одном из случаев.
func (s *FeatureService) GetRecord(signalFilename string) (map[string]interface{}, error) {
	path := filepath.Join(s.cfg.Pipeline.OutputDir, FeatureFilename(signalFilename))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("ошибка чтения файла признаков: %w", err)
	}

	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecordMalformed, err)
	}

	return record, nil
}

// WaveformView данные для отрисовки сигнала во вьювере
type WaveformView struct {
	Filename     string    `json:"filename"`
	FsHz         float64   `json:"fs_hz"`
	DurationSec  float64   `json:"duration_sec"`
	Samples      []float64 `json:"samples"`
	RPeaks       []int     `json:"r_peaks"`
	AmplitudeMin float64   `json:"amplitude_min"`
	AmplitudeMax float64   `json:"amplitude_max"`
}

// GetWaveform загружает окно сигнала для отображения вместе с отметками
// R-пиков (минимальное расстояние между пиками 0.4 секунды)
func (s *FeatureService) GetWaveform(signalFilename string, seconds float64) (*WaveformView, error) {
	path := filepath.Join(s.cfg.Pipeline.SignalDir, signalFilename)
	signal, err := s.signals.LoadSignal(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}

	fs := s.cfg.Pipeline.SampleRate
	duration := float64(len(signal)) / fs

	samples := len(signal)
	if seconds > 0 {
		requested := int(seconds * fs)
		if requested < samples {
			samples = requested
		}
	}
	window := signal[:samples]

	peaks := dsp.FindPeaks(window, int(fs*0.4))

	return &WaveformView{
		Filename:     signalFilename,
		FsHz:         fs,
		DurationSec:  duration,
		Samples:      window,
		RPeaks:       peaks,
		AmplitudeMin: utils.SafeFloat(utils.Min(window)),
		AmplitudeMax: utils.SafeFloat(utils.Max(window)),
	}, nil
}

// FeatureFilename возвращает имя файла признаков для файла сигнала:
// расширение заменяется суффиксом _features.json
func FeatureFilename(signalFilename string) string {
	ext := filepath.Ext(signalFilename)
	base := signalFilename[:len(signalFilename)-len(ext)]
	return base + "_features.json"
}
