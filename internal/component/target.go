// internal/component/target.go
package component

import (
	"image/color"

	"github.com/nxu-game/gaze-laser-game/internal/defs"
	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// Target — подлетающая к глазу цель.
// Points вычисляются при спавне: чем меньше цель, тем дороже попадание.
type Target struct {
	ID       uint64
	Position geom.Vec2
	Velocity geom.Vec2 // пикселей в секунду
	Radius   float64
	Kind     defs.TargetKind
	Points   int
	Lifetime float64 // оставшееся время жизни, секунды
	Color    color.RGBA
}

// IsBomb сообщает, является ли цель бомбой
func (t *Target) IsBomb() bool {
	return t.Kind == defs.KindBomb
}
