// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Начальное состояние игры
	InitialLives = 3
	InitialLevel = 1

	// Каждые LevelUpThreshold очков — новый уровень
	LevelUpThreshold = 1000

	// Спавн целей
	InitialSpawnInterval = 1.0  // секунды между спавнами на первом уровне
	MinSpawnInterval     = 0.5  // нижняя граница интервала
	SpawnIntervalDecay   = 0.92 // множитель интервала за уровень
	MaxTargets           = 32   // предел одновременных целей
	SpawnJitter          = 0.35 // разброс направления к глазу (радианы)

	// Цели
	TargetMinRadius   = 20.0
	TargetMaxRadius   = 50.0
	TargetMinSpeed    = 60.0  // пикселей в секунду
	TargetMaxSpeed    = 120.0 // пикселей в секунду
	SpeedPerLevel     = 0.15  // прирост скорости за уровень
	TargetMinLifetime = 5.0 // секунды до самоуничтожения
	TargetMaxLifetime = 10.0

	// Вероятность бомбы растёт с уровнем, но остаётся ниже предела
	BombBaseProbability   = 0.2
	BombProbabilityGrowth = 0.02
	BombMaxProbability    = 0.4

	// Урон по глазу: обычная цель и бомба
	EyeRadius       = 10.0
	NormalEyeDamage = 1
	BombEyeDamage   = 2

	// Лазеры
	BeamLength        = 2000.0
	ShotSpeed         = 900.0 // пикселей в секунду
	ShotRadius        = 8.0
	ShotTTL           = 0.3  // секунды жизни сильного выстрела
	FireCooldown      = 0.3  // секунды между сильными выстрелами
	BeamSuppressAfter = 0.3  // пауза прицельных лучей после выстрела
	FireDebounceTicks = 3    // кадров подряд ниже порога до срабатывания
	NoseTouchDistance = 50.0 // порог жеста в пикселях экрана

	// Взрывы
	ExplosionMaxSize      = 50.0
	ExplosionDuration     = 0.5
	BombExplosionMaxSize  = 100.0
	BombExplosionDuration = 1.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	BombColor       = color.RGBA{255, 0, 0, 255}
	BeamColor       = color.RGBA{180, 0, 255, 255}
	ShotColor       = color.RGBA{255, 0, 0, 255}
	EyeMarkerColor  = color.RGBA{0, 255, 255, 200}
	ExplosionColor  = color.RGBA{255, 165, 0, 255}
	BombBlastColor  = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}

	BeamWidth float32 = 2.0
	ShotWidth float32 = 6.0
)
