// internal/component/aim.go
package component

import "github.com/nxu-game/gaze-laser-game/pkg/geom"

// AimState — результат работы маппера взгляда за один кадр.
// Origin — середина между глазами в экранных координатах,
// Direction — единичный вектор от опорной точки экрана к Origin.
type AimState struct {
	Origin    geom.Vec2
	Direction geom.Vec2
	LeftEye   geom.Vec2
	RightEye  geom.Vec2
	Firing    bool // жест «касание носа» активен в этом кадре
	Valid     bool // было ли хоть одно успешное обнаружение лица
}
