package system

import (
	"testing"

	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/defs"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/internal/event"
	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// eventRecorder копит полученные события для проверок
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newScoringFixture() (*entity.World, *ScoringSystem, *eventRecorder) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	rec := &eventRecorder{}
	for _, t := range []event.EventType{
		event.TargetDestroyed, event.BombDefused, event.EyeHit,
		event.LevelUp, event.GameOver,
	} {
		d.Subscribe(t, rec)
	}
	return w, NewScoringSystem(w, d), rec
}

func TestScoreCrossesLevelThresholdOnce(t *testing.T) {
	w, scoring, rec := newScoringFixture()
	w.Session.Score = 995

	target := addTarget(w, geom.Vec2{X: 100, Y: 100}, 10, defs.KindNormal)
	scoring.Process([]Collision{{Kind: HitByShot, Target: target}})

	if w.Session.Score != 1005 {
		t.Fatalf("score = %d, want 1005", w.Session.Score)
	}
	if w.Session.Level != 2 {
		t.Fatalf("level = %d, want 2", w.Session.Level)
	}
	if rec.count(event.LevelUp) != 1 {
		t.Fatalf("LevelUp emitted %d times, want exactly 1", rec.count(event.LevelUp))
	}

	// Повторный тик без новых очков уровень не трогает
	scoring.Process(nil)
	if w.Session.Level != 2 || rec.count(event.LevelUp) != 1 {
		t.Fatal("level must not change without new score")
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	w, scoring, _ := newScoringFixture()
	w.Session.Score = 2500
	w.Session.Level = 3

	// Счёт ниже порога текущего уровня быть не может, но даже если
	// уровень выставлен вперёд вручную, он не откатывается
	w.Session.Level = 5
	scoring.Process(nil)
	if w.Session.Level != 5 {
		t.Fatalf("level dropped to %d", w.Session.Level)
	}
}

func TestBombDefusedGivesNoScore(t *testing.T) {
	w, scoring, rec := newScoringFixture()
	bomb := addTarget(w, geom.Vec2{X: 100, Y: 100}, 30, defs.KindBomb)

	scoring.Process([]Collision{{Kind: HitByBeam, Target: bomb}})

	if w.Session.Score != 0 {
		t.Fatalf("score = %d, want 0 for a defused bomb", w.Session.Score)
	}
	if rec.count(event.BombDefused) != 1 || rec.count(event.TargetDestroyed) != 0 {
		t.Fatalf("wrong events for a defused bomb: %+v", rec.events)
	}
}

func TestEyeHitDamage(t *testing.T) {
	w, scoring, rec := newScoringFixture()
	normal := addTarget(w, geom.Vec2{X: 640, Y: 360}, 20, defs.KindNormal)

	scoring.Process([]Collision{{Kind: ReachedEye, Target: normal}})
	if w.Session.Lives != config.InitialLives-config.NormalEyeDamage {
		t.Fatalf("lives = %d after a normal eye hit", w.Session.Lives)
	}

	bomb := addTarget(w, geom.Vec2{X: 640, Y: 360}, 20, defs.KindBomb)
	scoring.Process([]Collision{{Kind: ReachedEye, Target: bomb}})
	if w.Session.Lives != config.InitialLives-config.NormalEyeDamage-config.BombEyeDamage {
		t.Fatalf("lives = %d after a bomb eye hit", w.Session.Lives)
	}
	if rec.count(event.EyeHit) != 2 {
		t.Fatalf("EyeHit emitted %d times, want 2", rec.count(event.EyeHit))
	}
	if !w.Session.GameOver() || rec.count(event.GameOver) != 1 {
		// 3 - 1 - 2 = 0: партия закончилась этим же тиком
		t.Fatalf("game over expected at zero lives, phase=%v events=%d",
			w.Session.Phase, rec.count(event.GameOver))
	}
}

func TestBombAtOneLifeClampsToZero(t *testing.T) {
	w, scoring, rec := newScoringFixture()
	w.Session.Lives = 1
	bomb := addTarget(w, geom.Vec2{X: 640, Y: 360}, 20, defs.KindBomb)

	scoring.Process([]Collision{{Kind: ReachedEye, Target: bomb}})

	if w.Session.Lives != 0 {
		t.Fatalf("lives = %d, want 0 (clamped)", w.Session.Lives)
	}
	if !w.Session.GameOver() {
		t.Fatal("game over expected in the same tick")
	}
	if rec.count(event.GameOver) != 1 {
		t.Fatalf("GameOver emitted %d times, want 1", rec.count(event.GameOver))
	}
}

func TestProcessHaltsAfterGameOver(t *testing.T) {
	w, scoring, rec := newScoringFixture()
	w.Session.Phase = component.PhaseGameOver

	target := addTarget(w, geom.Vec2{X: 100, Y: 100}, 10, defs.KindNormal)
	scoring.Process([]Collision{{Kind: HitByShot, Target: target}})

	if w.Session.Score != 0 || len(rec.events) != 0 {
		t.Fatalf("scoring must be inert after game over: score=%d events=%d",
			w.Session.Score, len(rec.events))
	}
}

func TestMissesCostNothing(t *testing.T) {
	w, scoring, rec := newScoringFixture()
	gone := addTarget(w, geom.Vec2{X: -200, Y: 100}, 10, defs.KindNormal)
	stale := addTarget(w, geom.Vec2{X: 300, Y: 100}, 10, defs.KindBomb)

	scoring.Process([]Collision{
		{Kind: OutOfBounds, Target: gone},
		{Kind: Expired, Target: stale},
	})

	if w.Session.Score != 0 || w.Session.Lives != config.InitialLives {
		t.Fatalf("misses changed the session: score=%d lives=%d",
			w.Session.Score, w.Session.Lives)
	}
	if len(rec.events) != 0 {
		t.Fatalf("misses must be silent, got %+v", rec.events)
	}
}
