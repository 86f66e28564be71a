// internal/entity/world.go
package entity

import (
	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
)

// World — единственное место, где живут все игровые сущности.
// Мутируется на месте системами спавна, физики и счёта; каждая цель
// в Targets жива — удаление происходит немедленно, без отложенных меток.
type World struct {
	GameTime   float64
	NextID     uint64
	Targets    []*component.Target
	Shots      []*component.LaserShot
	Explosions []*component.Explosion
	Session    *component.Session
}

// NewWorld создаёт мир с начальным состоянием партии
func NewWorld() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset возвращает мир к начальным значениям (рестарт партии)
func (w *World) Reset() {
	w.GameTime = 0
	w.NextID = 1
	w.Targets = w.Targets[:0]
	w.Shots = w.Shots[:0]
	w.Explosions = w.Explosions[:0]
	w.Session = &component.Session{
		Score: 0,
		Lives: config.InitialLives,
		Level: config.InitialLevel,
		Phase: component.PhasePlaying,
	}
}

// NewEntityID выдаёт следующий идентификатор сущности
func (w *World) NewEntityID() uint64 {
	id := w.NextID
	w.NextID++
	return id
}

// RemoveTarget немедленно удаляет цель по идентификатору
func (w *World) RemoveTarget(id uint64) {
	for i, t := range w.Targets {
		if t.ID == id {
			w.Targets = append(w.Targets[:i], w.Targets[i+1:]...)
			return
		}
	}
}

// RemoveShot немедленно удаляет выстрел по идентификатору
func (w *World) RemoveShot(id uint64) {
	for i, s := range w.Shots {
		if s.ID == id {
			w.Shots = append(w.Shots[:i], w.Shots[i+1:]...)
			return
		}
	}
}

// FindTarget возвращает живую цель по идентификатору
func (w *World) FindTarget(id uint64) (*component.Target, bool) {
	for _, t := range w.Targets {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
