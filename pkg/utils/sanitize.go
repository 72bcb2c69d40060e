package utils

import (
	"math"
)

// SanitizeForJSON рекурсивно приводит значения к типам, которые
// корректно сериализуются в JSON. NaN и Inf превращаются в nil (null),
// потому что отсутствующая метрика не должна читаться как ноль.
// Повторный вызов на уже очищенной структуре возвращает идентичный результат.
func SanitizeForJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			result[key] = SanitizeForJSON(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = SanitizeForJSON(item)
		}
		return result
	case []float64:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = SanitizeForJSON(item)
		}
		return result
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return v
	case float32:
		return SanitizeForJSON(float64(v))
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	default:
		// bool, string, nil и прочие примитивы остаются как есть
		return v
	}
}
