package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NullFloat64 для метрик, которые могут отсутствовать.
// Отсутствующее значение сериализуется в JSON как null.
type NullFloat64 struct {
	sql.NullFloat64
}

// ValidFloat создает заполненное значение метрики
func ValidFloat(v float64) NullFloat64 {
	return NullFloat64{sql.NullFloat64{Float64: v, Valid: true}}
}

// MissingFloat создает отсутствующее значение метрики
func MissingFloat() NullFloat64 {
	return NullFloat64{sql.NullFloat64{Valid: false}}
}

// Scan реализует интерфейс Scanner для обработки пустых строк
func (nf *NullFloat64) Scan(value interface{}) error {
	if value == nil {
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
		return nil
	}

	switch v := value.(type) {
	case float64:
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = v, true
		return nil
	case string:
		if v == "" {
			nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
			return nil
		}
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = f, true
		return nil
	case []byte:
		if len(v) == 0 {
			nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
			return nil
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			nf.NullFloat64.Float64, nf.NullFloat64.Valid = 0.0, false
			return nil
		}
		nf.NullFloat64.Float64, nf.NullFloat64.Valid = f, true
		return nil
	}

	return fmt.Errorf("не удается конвертировать %T в NullFloat64", value)
}

// Value реализует интерфейс Valuer
func (nf NullFloat64) Value() (driver.Value, error) {
	if !nf.Valid {
		return nil, nil
	}
	return nf.Float64, nil
}

// MarshalJSON для корректной сериализации в JSON
func (nf NullFloat64) MarshalJSON() ([]byte, error) {
	if !nf.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nf.Float64)
}

// UnmarshalJSON для корректной десериализации из JSON
func (nf *NullFloat64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		nf.Float64, nf.Valid = 0.0, false
		return nil
	}
	if err := json.Unmarshal(data, &nf.Float64); err != nil {
		return err
	}
	nf.Valid = true
	return nil
}

// FeatureSummary итоговые признаки одного сигнала.
// Если Quality_OK=false, все интервалы отсутствуют, а Sinus_Rhythm=false.
type FeatureSummary struct {
	HeartRateMean NullFloat64 `json:"Heart_Rate_Mean"`             // средний пульс, уд/мин
	PRIntervalMs  NullFloat64 `json:"PR_Interval_ms"`              // интервал P-Q, мс
	QRSDurationMs NullFloat64 `json:"QRS_Duration_ms"`             // длительность комплекса QRS, мс
	QTIntervalMs  NullFloat64 `json:"QT_Interval_ms"`              // интервал Q-T(offset), мс
	SinusRhythm   bool        `json:"Sinus_Rhythm"`                // синусовый ритм (эвристика)
	QualityOK     bool        `json:"Quality_OK"`                  // сигнал пригоден для анализа
	SubjectType   string      `json:"subject_type,omitempty"`      // fetal | maternal
	Filename      string      `json:"filename,omitempty"`          // исходный файл сигнала
}

// NewRejectedSummary возвращает запись со значениями по умолчанию:
// все метрики отсутствуют, флаги сброшены
func NewRejectedSummary() FeatureSummary {
	return FeatureSummary{
		HeartRateMean: MissingFloat(),
		PRIntervalMs:  MissingFloat(),
		QRSDurationMs: MissingFloat(),
		QTIntervalMs:  MissingFloat(),
		SinusRhythm:   false,
		QualityOK:     false,
	}
}

// ToMap возвращает плоское представление записи для сохранения в файл
func (s FeatureSummary) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"Heart_Rate_Mean": nullableValue(s.HeartRateMean),
		"PR_Interval_ms":  nullableValue(s.PRIntervalMs),
		"QRS_Duration_ms": nullableValue(s.QRSDurationMs),
		"QT_Interval_ms":  nullableValue(s.QTIntervalMs),
		"Sinus_Rhythm":    s.SinusRhythm,
		"Quality_OK":      s.QualityOK,
		"subject_type":    s.SubjectType,
		"filename":        s.Filename,
	}
}

func nullableValue(nf NullFloat64) interface{} {
	if !nf.Valid {
		return nil
	}
	return nf.Float64
}

// ECGFeatureRecord представляет сохраненную запись признаков в базе данных
type ECGFeatureRecord struct {
	ID            string      `gorm:"type:uuid;primary_key" json:"id"`
	Filename      string      `gorm:"not null;index" json:"filename"`
	SubjectType   string      `gorm:"not null" json:"subject_type"`
	HeartRateMean NullFloat64 `json:"heart_rate_mean"`
	PRIntervalMs  NullFloat64 `json:"pr_interval_ms"`
	QRSDurationMs NullFloat64 `json:"qrs_duration_ms"`
	QTIntervalMs  NullFloat64 `json:"qt_interval_ms"`
	SinusRhythm   bool        `json:"sinus_rhythm"`
	QualityOK     bool        `json:"quality_ok"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
}

// TableName устанавливает имя таблицы
func (ECGFeatureRecord) TableName() string {
	return "ecg_feature_records"
}

// BeforeCreate устанавливает ID перед созданием
func (r *ECGFeatureRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// NewFeatureRecord создает запись БД из итоговых признаков
func NewFeatureRecord(s FeatureSummary) *ECGFeatureRecord {
	return &ECGFeatureRecord{
		Filename:      s.Filename,
		SubjectType:   s.SubjectType,
		HeartRateMean: s.HeartRateMean,
		PRIntervalMs:  s.PRIntervalMs,
		QRSDurationMs: s.QRSDurationMs,
		QTIntervalMs:  s.QTIntervalMs,
		SinusRhythm:   s.SinusRhythm,
		QualityOK:     s.QualityOK,
		CreatedAt:     time.Now().UTC(),
	}
}
