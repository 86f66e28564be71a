// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IsFiniteCoord проверяет, что координата пригодна для дальнейшей
// математики: не NaN и не бесконечность.
func IsFiniteCoord(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
