// internal/event/types.go
package event

import "github.com/nxu-game/gaze-laser-game/pkg/geom"

const (
	StrongLaserFired EventType = "StrongLaserFired" // Сильный выстрел по жесту
	TargetDestroyed  EventType = "TargetDestroyed"  // Цель уничтожена лазером
	BombDefused      EventType = "BombDefused"      // Бомба сбита до подлёта к глазу
	EyeHit           EventType = "EyeHit"           // Цель долетела до глаза
	LevelUp          EventType = "LevelUp"
	GameOver         EventType = "GameOver"
	GameRestarted    EventType = "GameRestarted"
)

// TargetEventData — данные событий, связанных с конкретной целью
type TargetEventData struct {
	Position geom.Vec2
	IsBomb   bool
	Points   int
}
