package services

import (
	"fmt"

	"ecg-postprocessing/internal/models"

	"gorm.io/gorm"
)

// DataService отвечает за сохранение и чтение записей признаков в БД
type DataService struct {
	db *gorm.DB
}

// NewDataService создает новый сервис для работы с данными
func NewDataService(db *gorm.DB) *DataService {
	return &DataService{db: db}
}

// SaveSummary сохраняет итоговые признаки сигнала
func (ds *DataService) SaveSummary(summary models.FeatureSummary) (*models.ECGFeatureRecord, error) {
	record := models.NewFeatureRecord(summary)
	if err := ds.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("ошибка сохранения записи признаков: %w", err)
	}
	return record, nil
}

// GetRecordsByFilename возвращает историю записей для исходного файла сигнала
func (ds *DataService) GetRecordsByFilename(filename string) ([]models.ECGFeatureRecord, error) {
	var records []models.ECGFeatureRecord
	err := ds.db.Where("filename = ?", filename).
		Order("created_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей: %w", err)
	}

	return records, nil
}
