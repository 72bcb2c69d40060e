package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ecg-postprocessing/internal/services"

	"github.com/gin-gonic/gin"
)

// FeaturesHandler обрабатывает HTTP запросы пайплайна признаков
type FeaturesHandler struct {
	featureService *services.FeatureService
	dataService    *services.DataService // nil, если БД не настроена
}

// NewFeaturesHandler создает новый обработчик запросов признаков
func NewFeaturesHandler(featureService *services.FeatureService, dataService *services.DataService) *FeaturesHandler {
	return &FeaturesHandler{
		featureService: featureService,
		dataService:    dataService,
	}
}

// ComputeRequest структура запроса на расчет признаков
type ComputeRequest struct {
	Signal      []float64 `json:"signal" binding:"required"`
	FsHz        float64   `json:"fs_hz"`
	SubjectType string    `json:"subject_type" binding:"omitempty,oneof=fetal maternal"`
}

// ComputeFeatures вычисляет признаки переданного сигнала
// @Summary Расчет признаков ЭКГ сигнала
// @Description Прогоняет сигнал через пайплайн: фильтрация, контроль качества, делинеация, интервалы, ритм
// @Tags features
// @Accept json
// @Produce json
// @Param request body ComputeRequest true "Сигнал и частота дискретизации"
// @Success 200 {object} models.FeatureSummary "Вычисленные признаки"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Router /features [post]
func (h *FeaturesHandler) ComputeFeatures(c *gin.Context) {
	var req ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	summary := h.featureService.ComputeFeatures(c.Request.Context(), req.Signal, req.FsHz, req.SubjectType)
	c.JSON(http.StatusOK, summary)
}

// GetRecord возвращает сохраненный файл признаков для вьювера
// @Summary Чтение файла признаков
// @Description Возвращает содержимое *_features.json для файла сигнала
// @Tags records
// @Produce json
// @Param filename path string true "Имя файла сигнала"
// @Success 200 {object} map[string]interface{} "Сохраненные признаки"
// @Failure 404 {object} models.ErrorResponse "Файл признаков отсутствует"
// @Failure 422 {object} models.ErrorResponse "Файл признаков поврежден"
// @Router /records/{filename} [get]
func (h *FeaturesHandler) GetRecord(c *gin.Context) {
	filename := c.Param("filename")

	record, err := h.featureService.GetRecord(filename)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "no feature file",
				"details": "признаки для файла еще не рассчитаны: " + filename,
			})
		case errors.Is(err, services.ErrRecordMalformed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "parse error",
				"details": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "record read error",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetRecordHistory возвращает историю записей признаков из БД
// @Summary История записей признаков
// @Description Возвращает сохраненные в БД записи для файла сигнала
// @Tags records
// @Produce json
// @Param filename path string true "Имя файла сигнала"
// @Success 200 {object} map[string]interface{} "Список записей"
// @Failure 503 {object} models.ErrorResponse "БД не настроена"
// @Router /records/{filename}/history [get]
func (h *FeaturesHandler) GetRecordHistory(c *gin.Context) {
	if h.dataService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "database is not configured",
		})
		return
	}

	filename := c.Param("filename")
	records, err := h.dataService.GetRecordsByFilename(filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "history read error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": filename,
		"records":  records,
		"count":    len(records),
	})
}

// GetWaveform возвращает окно сигнала для отрисовки
// @Summary Окно сигнала для вьювера
// @Description Возвращает семплы сигнала с отметками R-пиков для графика
// @Tags records
// @Produce json
// @Param filename path string true "Имя файла сигнала"
// @Param seconds query number false "Длительность окна в секундах"
// @Success 200 {object} services.WaveformView "Окно сигнала"
// @Failure 404 {object} models.ErrorResponse "Файл сигнала отсутствует"
// @Router /waveform/{filename} [get]
func (h *FeaturesHandler) GetWaveform(c *gin.Context) {
	filename := c.Param("filename")

	seconds := 0.0
	if raw := c.Query("seconds"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request",
				"details": "seconds должен быть положительным числом",
			})
			return
		}
		seconds = parsed
	}

	view, err := h.featureService.GetWaveform(filename, seconds)
	if err != nil {
		if errors.Is(err, services.ErrSignalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "no signal file",
				"details": "файл сигнала не найден: " + filename,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "waveform read error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает статус работы сервиса постобработки
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /health [get]
func (h *FeaturesHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "ECG Post-Processing",
		"timestamp": time.Now().UTC(),
	})
}
