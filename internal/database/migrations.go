package database

import (
	"fmt"
	"log"

	"ecg-postprocessing/internal/models"

	"gorm.io/gorm"
)

// RunMigrations выполняет миграции базы данных
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Запуск миграций базы данных...")

	// Автоматические миграции GORM
	err := db.AutoMigrate(
		&models.ECGFeatureRecord{},
	)

	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("ошибка создания индексов: %w", err)
	}

	log.Println("✅ Миграции выполнены успешно")
	return nil
}

// createIndexes создает дополнительные индексы
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_feature_records_filename_created ON ecg_feature_records(filename, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_feature_records_subject_type ON ecg_feature_records(subject_type)",

		// Частичный индекс для быстрого поиска забракованных сигналов
		"CREATE INDEX IF NOT EXISTS idx_feature_records_rejected ON ecg_feature_records(created_at) WHERE quality_ok = false",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Не удалось создать индекс: %s, ошибка: %v", indexSQL, err)
		}
	}

	return nil
}
