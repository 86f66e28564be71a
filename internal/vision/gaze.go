// internal/vision/gaze.go
package vision

import (
	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/utils"
	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// Mapper переводит ключевые точки лица в состояние прицела.
// Точка прицеливания — середина между глазами в экранных координатах,
// направление — от центра экрана к этой точке. Жест «касание носа»
// детектируется по близости кончика носа к опорной точке и требует
// debounce подряд идущих кадров.
type Mapper struct {
	screenW   float64
	screenH   float64
	anchor    geom.Vec2
	threshold float64
	debounce  int

	last       component.AimState
	consec     int
	prevFiring bool
}

// NewMapper создаёт маппер для экрана заданного размера
func NewMapper(screenW, screenH, noseTouchDistance float64, debounceTicks int) *Mapper {
	m := &Mapper{
		screenW:   screenW,
		screenH:   screenH,
		anchor:    geom.Vec2{X: screenW / 2, Y: screenH / 2},
		threshold: noseTouchDistance,
		debounce:  debounceTicks,
	}
	// Нейтральное состояние до первого обнаружения лица
	m.last = component.AimState{
		Origin:    m.anchor,
		Direction: geom.Vec2{X: 0, Y: -1},
	}
	return m
}

// Update пересчитывает состояние прицела по точкам текущего кадра.
// Возвращает состояние и признак фронта выстрела (переход жеста
// из неактивного в активный). Кадр без лица (nil или FaceDetected=false)
// сохраняет последнее валидное состояние и сбрасывает жест.
func (m *Mapper) Update(kp *Keypoints) (component.AimState, bool) {
	if kp == nil || !kp.FaceDetected || !sane(kp) {
		m.consec = 0
		m.prevFiring = false
		aim := m.last
		aim.Firing = false
		m.last = aim
		return aim, false
	}

	left := m.toScreen(kp.LeftEye)
	right := m.toScreen(kp.RightEye)
	nose := m.toScreen(kp.NoseTip)

	origin := geom.Vec2{
		X: (left.X + right.X) / 2,
		Y: (left.Y + right.Y) / 2,
	}
	direction := origin.Sub(m.anchor).Normalize()
	if direction.Len() == 0 {
		// Прицел ровно в опорной точке: держим нейтральное направление
		direction = geom.Vec2{X: 0, Y: -1}
	}

	// Жест: кончик носа достаточно близко к опорной точке между глазами
	if geom.Dist(nose, origin) < m.threshold {
		m.consec++
	} else {
		m.consec = 0
	}
	firing := m.consec >= m.debounce
	fireEdge := firing && !m.prevFiring
	m.prevFiring = firing

	aim := component.AimState{
		Origin:    origin,
		Direction: direction,
		LeftEye:   left,
		RightEye:  right,
		Firing:    firing,
		Valid:     true,
	}
	m.last = aim
	return aim, fireEdge
}

// Last возвращает последнее вычисленное состояние прицела
func (m *Mapper) Last() component.AimState {
	return m.last
}

// toScreen переводит нормализованную точку в экранные пиксели с
// ограничением границами экрана.
func (m *Mapper) toScreen(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: utils.Clamp(p.X, 0, 1) * m.screenW,
		Y: utils.Clamp(p.Y, 0, 1) * m.screenH,
	}
}

// sane отбрасывает кадры с NaN или бесконечностями в координатах,
// чтобы шум трекинга не попадал в математику столкновений.
func sane(kp *Keypoints) bool {
	for _, p := range []geom.Vec2{kp.LeftEye, kp.RightEye, kp.NoseTip} {
		if !utils.IsFiniteCoord(p.X) || !utils.IsFiniteCoord(p.Y) {
			return false
		}
	}
	return true
}
