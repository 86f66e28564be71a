// internal/system/spawn.go
package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
	"github.com/nxu-game/gaze-laser-game/internal/defs"
	"github.com/nxu-game/gaze-laser-game/internal/entity"
	"github.com/nxu-game/gaze-laser-game/internal/utils"
	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

// SpawnSystem периодически создаёт цели на краях экрана.
// Интервал спавна, скорость и доля бомб зависят от текущего уровня.
type SpawnSystem struct {
	world  *entity.World
	rng    *utils.PRNGService
	timer  float64
	width  float64
	height float64
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		world:  world,
		rng:    rng,
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
	}
}

// Update накапливает время и спавнит не более одной цели за тик
func (s *SpawnSystem) Update(deltaTime float64, aim component.AimState) {
	if s.world.Session.GameOver() {
		return
	}

	s.timer += deltaTime
	if s.timer < s.SpawnInterval() {
		return
	}
	s.timer = 0

	// При достижении предела одновременных целей тик пропускается
	if len(s.world.Targets) >= config.MaxTargets {
		return
	}

	s.spawnTarget(aim)
}

// SpawnInterval возвращает интервал спавна для текущего уровня
func (s *SpawnSystem) SpawnInterval() float64 {
	level := s.world.Session.Level
	interval := config.InitialSpawnInterval * math.Pow(config.SpawnIntervalDecay, float64(level-1))
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	return interval
}

// BombProbability возвращает долю бомб для текущего уровня.
// Растёт монотонно и никогда не превышает BombMaxProbability,
// чтобы игра оставалась выигрываемой.
func (s *SpawnSystem) BombProbability() float64 {
	level := s.world.Session.Level
	p := config.BombBaseProbability + config.BombProbabilityGrowth*float64(level-1)
	if p > config.BombMaxProbability {
		p = config.BombMaxProbability
	}
	return p
}

func (s *SpawnSystem) spawnTarget(aim component.AimState) {
	kind := defs.KindNormal
	if s.rng.Float64() < s.BombProbability() {
		kind = defs.KindBomb
	}

	def, ok := s.pickDefinition(kind)
	if !ok {
		return
	}

	radius := s.rng.Range(def.MinRadius, def.MaxRadius)
	position := s.edgePosition(radius)

	// Цель летит к точке прицеливания; без валидного прицела — к центру
	goal := geom.Vec2{X: s.width / 2, Y: s.height / 2}
	if aim.Valid {
		goal = aim.Origin
	}

	direction := goal.Sub(position).Normalize()
	if direction.Len() == 0 {
		direction = geom.Vec2{X: 0, Y: 1}
	}
	direction = rotate(direction, s.rng.Range(-config.SpawnJitter, config.SpawnJitter))

	level := s.world.Session.Level
	speed := s.rng.Range(def.MinSpeed, def.MaxSpeed) * (1 + config.SpeedPerLevel*float64(level-1))

	points := 0
	if kind == defs.KindNormal {
		// Чем меньше цель, тем дороже попадание
		points = int(1000 / radius)
	}

	s.world.Targets = append(s.world.Targets, &component.Target{
		ID:       s.world.NewEntityID(),
		Position: position,
		Velocity: direction.Scale(speed),
		Radius:   radius,
		Kind:     kind,
		Points:   points,
		Lifetime: s.rng.Range(def.MinLifetime, def.MaxLifetime),
		Color:    s.targetColor(def),
	})
}

// pickDefinition выбирает взвешенным рандомом определение нужного типа.
// Кандидаты сортируются по ID, иначе порядок обхода карты ломает
// воспроизводимость сидированных партий.
func (s *SpawnSystem) pickDefinition(kind defs.TargetKind) (defs.TargetDefinition, bool) {
	var candidates []defs.TargetDefinition
	for _, def := range defs.TargetLibrary {
		if def.Kind == kind {
			candidates = append(candidates, def)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})
	if len(candidates) == 0 {
		return defs.TargetDefinition{}, false
	}
	id := s.rng.ChooseWeightedTarget(candidates)
	def, ok := defs.TargetLibrary[id]
	return def, ok
}

// edgePosition выбирает точку равномерно на одной из четырёх сторон экрана
func (s *SpawnSystem) edgePosition(radius float64) geom.Vec2 {
	switch s.rng.Intn(4) {
	case 0: // верх
		return geom.Vec2{X: s.rng.Range(0, s.width), Y: -radius}
	case 1: // право
		return geom.Vec2{X: s.width + radius, Y: s.rng.Range(0, s.height)}
	case 2: // низ
		return geom.Vec2{X: s.rng.Range(0, s.width), Y: s.height + radius}
	default: // лево
		return geom.Vec2{X: -radius, Y: s.rng.Range(0, s.height)}
	}
}

func (s *SpawnSystem) targetColor(def defs.TargetDefinition) color.RGBA {
	if def.RandomColor {
		return color.RGBA{
			R: uint8(50 + s.rng.Intn(206)),
			G: uint8(50 + s.rng.Intn(206)),
			B: uint8(50 + s.rng.Intn(206)),
			A: 255,
		}
	}
	return color.RGBA{R: def.Color.R, G: def.Color.G, B: def.Color.B, A: 255}
}

// rotate поворачивает вектор на угол в радианах
func rotate(v geom.Vec2, angle float64) geom.Vec2 {
	sin, cos := math.Sincos(angle)
	return geom.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
