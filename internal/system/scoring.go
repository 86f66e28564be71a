// internal/system/scoring.go
package system

import (
	"log"

	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/internal/event"
)

// ScoringSystem применяет исходы тика к счёту, жизням и уровню
// и рассылает события подписчикам (звук, эффекты).
type ScoringSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
}

func NewScoringSystem(world *entity.World, dispatcher *event.Dispatcher) *ScoringSystem {
	return &ScoringSystem{world: world, dispatcher: dispatcher}
}

// Process обрабатывает события одного тика.
// Бомба, сбитая до подлёта к глазу, безопасна и очков не даёт.
// Долетевшая до глаза цель снимает жизни: обычная одну, бомба две.
func (s *ScoringSystem) Process(events []Collision) {
	session := s.world.Session
	if session.GameOver() {
		return
	}

	for _, e := range events {
		data := event.TargetEventData{
			Position: e.Target.Position,
			IsBomb:   e.Target.IsBomb(),
			Points:   e.Target.Points,
		}

		switch e.Kind {
		case HitByBeam, HitByShot:
			if e.Target.IsBomb() {
				s.dispatcher.Emit(event.BombDefused, data)
			} else {
				session.Score += e.Target.Points
				s.dispatcher.Emit(event.TargetDestroyed, data)
			}

		case ReachedEye:
			damage := config.NormalEyeDamage
			if e.Target.IsBomb() {
				damage = config.BombEyeDamage
			}
			session.Lives -= damage
			if session.Lives < 0 {
				// Отрицательные жизни — дефект логики: зажимаем и логируем
				log.Printf("defect: lives went negative (%d), clamping to 0", session.Lives)
				session.Lives = 0
			}
			s.dispatcher.Emit(event.EyeHit, data)

		case OutOfBounds, Expired:
			// Промах: без штрафа и без звука
		}
	}

	// Уровень монотонно не убывает в пределах партии
	if lvl := session.Score/config.LevelUpThreshold + 1; lvl > session.Level {
		session.Level = lvl
		s.dispatcher.Emit(event.LevelUp, nil)
	}

	if session.Lives == 0 && !session.GameOver() {
		session.Phase = component.PhaseGameOver
		s.dispatcher.Emit(event.GameOver, nil)
	}
}
