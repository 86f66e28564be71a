// internal/component/laser.go
package component

import "github.com/nxu-game/gaze-laser-game/pkg/geom"

// LaserShot — сильный выстрел: летящий снаряд с ограниченным временем жизни
type LaserShot struct {
	ID       uint64
	Position geom.Vec2
	Velocity geom.Vec2
	Radius   float64
	TTL      float64 // оставшееся время жизни, секунды
}

// Beam — тонкий прицельный луч, пересчитываемый каждый тик из AimState.
// Не является персистентной сущностью: живёт один кадр.
type Beam struct {
	Start geom.Vec2
	End   geom.Vec2
}

// BeamFrom строит отрезок луча от точки прицеливания вдоль направления
func BeamFrom(origin, direction geom.Vec2, length float64) Beam {
	d := direction.Normalize()
	return Beam{
		Start: origin,
		End:   origin.Add(d.Scale(length)),
	}
}
