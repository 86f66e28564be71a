// internal/system/physics.go
package system

import (
	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// OutcomeKind — исход жизни цели в рамках одного тика.
// На одну цель за тик приходится не более одного исхода.
type OutcomeKind int

const (
	HitByBeam OutcomeKind = iota
	HitByShot
	ReachedEye
	OutOfBounds
	Expired
)

// Collision — один исход для одной цели
type Collision struct {
	Kind   OutcomeKind
	Target *component.Target
	ShotID uint64 // заполнен только для HitByShot
}

// PhysicsSystem продвигает сущности и находит столкновения.
// Симуляция дискретная, по тикам; туннелирование тонких целей на
// больших скоростях — принятое ограничение.
type PhysicsSystem struct {
	world  *entity.World
	width  float64
	height float64
}

func NewPhysicsSystem(world *entity.World) *PhysicsSystem {
	return &PhysicsSystem{
		world:  world,
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
	}
}

// Step выполняет один тик: продвижение, поиск столкновений, применение.
// beamActive=false на время подавления прицельного луча после выстрела.
func (s *PhysicsSystem) Step(deltaTime float64, aim component.AimState, beamActive bool) []Collision {
	s.Advance(deltaTime)
	events := s.Detect(aim, beamActive)
	s.Apply(events)
	return events
}

// Advance продвигает позиции и таймеры всех сущностей
func (s *PhysicsSystem) Advance(deltaTime float64) {
	for _, t := range s.world.Targets {
		t.Position = t.Position.Add(t.Velocity.Scale(deltaTime))
		t.Lifetime -= deltaTime
	}
	for _, shot := range s.world.Shots {
		shot.Position = shot.Position.Add(shot.Velocity.Scale(deltaTime))
		shot.TTL -= deltaTime
	}
}

// Detect — чистая функция от текущих позиций и радиусов: не мутирует мир,
// повторный вызов на том же состоянии даёт тот же набор событий.
// Уничтожение лучом или выстрелом приоритетнее попадания в глаз,
// поэтому сбитая в этом тике цель не засчитывается как долетевшая.
func (s *PhysicsSystem) Detect(aim component.AimState, beamActive bool) []Collision {
	var events []Collision

	var beam component.Beam
	useBeam := beamActive && aim.Valid
	if useBeam {
		beam = component.BeamFrom(aim.Origin, aim.Direction, config.BeamLength)
	}

	for _, t := range s.world.Targets {
		if useBeam && geom.SegmentCircleHit(beam.Start, beam.End, t.Position, t.Radius) {
			events = append(events, Collision{Kind: HitByBeam, Target: t})
			continue
		}

		if shotID, hit := s.shotHit(t); hit {
			events = append(events, Collision{Kind: HitByShot, Target: t, ShotID: shotID})
			continue
		}

		if aim.Valid && geom.CirclesOverlap(t.Position, t.Radius, aim.Origin, config.EyeRadius) {
			events = append(events, Collision{Kind: ReachedEye, Target: t})
			continue
		}

		if s.outOfBounds(t) {
			events = append(events, Collision{Kind: OutOfBounds, Target: t})
			continue
		}

		if t.Lifetime <= 0 {
			events = append(events, Collision{Kind: Expired, Target: t})
		}
	}

	return events
}

// Apply удаляет затронутые цели и истёкшие выстрелы.
// Удаление идемпотентно: несколько событий по одной цели сводятся
// к одному удалению.
func (s *PhysicsSystem) Apply(events []Collision) {
	for _, e := range events {
		s.world.RemoveTarget(e.Target.ID)
	}

	// Сильный выстрел не расходуется при попадании: как и исходный
	// лазер, он живёт весь свой TTL и может сбить несколько целей.
	alive := s.world.Shots[:0]
	for _, shot := range s.world.Shots {
		if shot.TTL > 0 {
			alive = append(alive, shot)
		}
	}
	s.world.Shots = alive
}

// shotHit возвращает первый выстрел, пересекающийся с целью
func (s *PhysicsSystem) shotHit(t *component.Target) (uint64, bool) {
	for _, shot := range s.world.Shots {
		if shot.TTL <= 0 {
			continue
		}
		if geom.CirclesOverlap(shot.Position, shot.Radius, t.Position, t.Radius) {
			return shot.ID, true
		}
	}
	return 0, false
}

// outOfBounds — цель ушла за границы экрана дальше своего радиуса
func (s *PhysicsSystem) outOfBounds(t *component.Target) bool {
	return t.Position.X+t.Radius < 0 ||
		t.Position.X-t.Radius > s.width ||
		t.Position.Y+t.Radius < 0 ||
		t.Position.Y-t.Radius > s.height
}
