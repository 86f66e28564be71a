// internal/system/effects.go
package system

import (
	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/internal/event"
)

// EffectsSystem создаёт взрывы по событиям уничтожения целей
// и продвигает их анимацию. Подписывается на диспетчер событий.
type EffectsSystem struct {
	world *entity.World
}

func NewEffectsSystem(world *entity.World, dispatcher *event.Dispatcher) *EffectsSystem {
	es := &EffectsSystem{world: world}
	dispatcher.Subscribe(event.TargetDestroyed, es)
	dispatcher.Subscribe(event.BombDefused, es)
	dispatcher.Subscribe(event.EyeHit, es)
	return es
}

// OnEvent реализует event.Listener
func (s *EffectsSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TargetEventData)
	if !ok {
		return
	}

	explosion := &component.Explosion{
		Position: data.Position,
		MaxSize:  config.ExplosionMaxSize,
		Duration: config.ExplosionDuration,
		Color:    config.ExplosionColor,
	}
	// Бомбы взрываются крупнее, дольше и красным
	if data.IsBomb {
		explosion.MaxSize = config.BombExplosionMaxSize
		explosion.Duration = config.BombExplosionDuration
		explosion.Color = config.BombBlastColor
	}
	s.world.Explosions = append(s.world.Explosions, explosion)
}

// Update продвигает взрывы и убирает закончившиеся
func (s *EffectsSystem) Update(deltaTime float64) {
	alive := s.world.Explosions[:0]
	for _, e := range s.world.Explosions {
		e.Elapsed += deltaTime
		if !e.Expired() {
			alive = append(alive, e)
		}
	}
	s.world.Explosions = alive
}
