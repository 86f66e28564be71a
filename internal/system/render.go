// internal/system/render.go
package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// RenderSystem рисует фон с камеры и все игровые сущности.
// HUD и оверлеи рисуются отдельно в internal/ui.
type RenderSystem struct {
	world *entity.World

	// Кэш фонового кадра: новый ebiten.Image создаётся только
	// при смене кадра с камеры
	lastFrame image.Image
	bg        *ebiten.Image
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Draw отрисовывает кадр: фон, цели, лучи, выстрелы, взрывы, маркер глаза
func (s *RenderSystem) Draw(screen *ebiten.Image, frame image.Image, aim component.AimState, beamActive bool) {
	s.drawBackground(screen, frame)

	for _, t := range s.world.Targets {
		x, y, r := float32(t.Position.X), float32(t.Position.Y), float32(t.Radius)
		vector.DrawFilledCircle(screen, x, y, r, t.Color, true)
		if t.IsBomb() {
			// Тёмное кольцо отличает бомбу от обычной цели
			vector.StrokeCircle(screen, x, y, r*0.6, 3, config.BackgroundColor, true)
		}
	}

	if beamActive && aim.Valid {
		beam := component.BeamFrom(aim.Origin, aim.Direction, config.BeamLength)
		// Прицельные лучи из обоих глаз сходятся в конце луча
		for _, eye := range []geom.Vec2{aim.LeftEye, aim.RightEye} {
			vector.StrokeLine(screen,
				float32(eye.X), float32(eye.Y),
				float32(beam.End.X), float32(beam.End.Y),
				config.BeamWidth, config.BeamColor, true)
		}
	}

	for _, shot := range s.world.Shots {
		// Короткий след позади снаряда
		tail := shot.Position.Sub(shot.Velocity.Scale(0.03))
		vector.StrokeLine(screen,
			float32(tail.X), float32(tail.Y),
			float32(shot.Position.X), float32(shot.Position.Y),
			config.ShotWidth, config.ShotColor, true)
		vector.DrawFilledCircle(screen,
			float32(shot.Position.X), float32(shot.Position.Y),
			float32(shot.Radius), config.ShotColor, true)
	}

	for _, e := range s.world.Explosions {
		if size := e.Size(); size > 0 {
			vector.DrawFilledCircle(screen,
				float32(e.Position.X), float32(e.Position.Y),
				float32(size), e.Color, true)
		}
	}

	if aim.Valid {
		vector.StrokeCircle(screen,
			float32(aim.Origin.X), float32(aim.Origin.Y),
			float32(config.EyeRadius), 2, config.EyeMarkerColor, true)
	}
}

// drawBackground рисует последний кадр с камеры, растянутый на экран.
// Без кадра остаётся однотонный фон: пропавшая камера не роняет игру.
func (s *RenderSystem) drawBackground(screen *ebiten.Image, frame image.Image) {
	screen.Fill(config.BackgroundColor)
	if frame == nil {
		return
	}

	if frame != s.lastFrame {
		s.lastFrame = frame
		s.bg = ebiten.NewImageFromImage(frame)
	}
	if s.bg == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	bounds := s.bg.Bounds()
	op.GeoM.Scale(
		float64(config.ScreenWidth)/float64(bounds.Dx()),
		float64(config.ScreenHeight)/float64(bounds.Dy()),
	)
	screen.DrawImage(s.bg, op)
}
