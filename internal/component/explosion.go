// internal/component/explosion.go
package component

import (
	"image/color"

	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// Explosion — визуальный эффект взрыва: первую половину времени растёт,
// вторую — сжимается. На игровую логику не влияет.
type Explosion struct {
	Position geom.Vec2
	MaxSize  float64
	Duration float64
	Elapsed  float64
	Color    color.RGBA
}

// Size возвращает текущий радиус эффекта
func (e *Explosion) Size() float64 {
	if e.Elapsed >= e.Duration {
		return 0
	}
	half := e.Duration * 0.5
	if e.Elapsed < half {
		return e.MaxSize * (e.Elapsed / half)
	}
	return e.MaxSize * (1 - (e.Elapsed-half)/half)
}

// Expired сообщает, закончился ли эффект
func (e *Explosion) Expired() bool {
	return e.Elapsed >= e.Duration
}
