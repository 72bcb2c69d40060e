package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ecg-postprocessing/config"
	"ecg-postprocessing/internal/delineation"
	"ecg-postprocessing/internal/features"
	"ecg-postprocessing/pkg/utils"
)

// BatchService обрабатывает каталог файлов сигналов: каждый файл
// независимая единица работы, ошибки одного файла не прерывают батч.
// Повторных попыток нет: сбои считаются детерминированными.
type BatchService struct {
	cfg         *config.Config
	extractor   *features.FeatureExtractor
	signals     *SignalService
	dataService *DataService // nil, если БД не настроена
}

// NewBatchService создает сервис батчевой обработки
func NewBatchService(cfg *config.Config, oracle delineation.Oracle, signals *SignalService, dataService *DataService) *BatchService {
	return &BatchService{
		cfg:         cfg,
		extractor:   features.NewFeatureExtractor(cfg.Pipeline, oracle),
		signals:     signals,
		dataService: dataService,
	}
}

// Run обрабатывает все файлы сигналов из каталога последовательно.
// Обработка одного файла: загрузка -> извлечение признаков -> метаданные ->
// санитизация -> запись *_features.json (+ БД при наличии).
func (bs *BatchService) Run(ctx context.Context) error {
	signalDir := bs.cfg.Pipeline.SignalDir
	outputDir := bs.cfg.Pipeline.OutputDir

	entries, err := os.ReadDir(signalDir)
	if err != nil {
		return fmt.Errorf("ошибка чтения каталога сигналов: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога результатов: %w", err)
	}

	processed := 0
	skipped := 0
	failed := 0

	for _, entry := range entries {
		if ctx.Err() != nil {
			slog.Warn("Батч прерван", "error", ctx.Err())
			break
		}
		if entry.IsDir() || !bs.signals.IsSignalFile(entry.Name()) {
			continue
		}

		filename := entry.Name()

		subjectType, ok := bs.signals.SubjectType(filename)
		if !ok {
			slog.Warn("Пропускаем файл с неизвестным типом сигнала", "filename", filename)
			skipped++
			continue
		}

		if err := bs.processFile(ctx, filename, subjectType); err != nil {
			slog.Error("Ошибка обработки файла", "filename", filename, "error", err)
			failed++
			continue
		}

		processed++
	}

	slog.Info("Батч завершен", "processed", processed, "skipped", skipped, "failed", failed)
	return nil
}

// processFile обрабатывает один файл сигнала
func (bs *BatchService) processFile(ctx context.Context, filename, subjectType string) error {
	signal, err := bs.signals.LoadSignal(filepath.Join(bs.cfg.Pipeline.SignalDir, filename))
	if err != nil {
		return err
	}

	summary := bs.extractor.Extract(ctx, signal)
	summary.SubjectType = subjectType
	summary.Filename = filename

	// Приводим значения к JSON-безопасным типам перед записью
	payload := utils.SanitizeForJSON(summary.ToMap())

	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации признаков: %w", err)
	}

	outPath := filepath.Join(bs.cfg.Pipeline.OutputDir, FeatureFilename(filename))
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи файла признаков: %w", err)
	}

	slog.Info("Признаки сохранены", "filename", filename, "output", filepath.Base(outPath), "quality_ok", summary.QualityOK)

	// Сохранение в БД не критично для батча
	if bs.dataService != nil {
		if _, err := bs.dataService.SaveSummary(summary); err != nil {
			slog.Warn("Не удалось сохранить запись в БД", "filename", filename, "error", err)
		}
	}

	return nil
}
