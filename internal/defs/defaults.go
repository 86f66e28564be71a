// internal/defs/defaults.go
package defs

import "github.com/nxu-game/gaze-laser-game/internal/config"

// loadDefaults заполняет библиотеку встроенными определениями,
// совпадающими с константами из config.
func loadDefaults() {
	TargetLibrary = map[string]TargetDefinition{
		"normal": {
			ID:          "normal",
			Kind:        KindNormal,
			Weight:      8,
			MinRadius:   config.TargetMinRadius,
			MaxRadius:   config.TargetMaxRadius,
			MinSpeed:    config.TargetMinSpeed,
			MaxSpeed:    config.TargetMaxSpeed,
			MinLifetime: config.TargetMinLifetime,
			MaxLifetime: config.TargetMaxLifetime,
			RandomColor: true,
		},
		"bomb": {
			ID:          "bomb",
			Kind:        KindBomb,
			Weight:      2,
			MinRadius:   config.TargetMinRadius,
			MaxRadius:   config.TargetMaxRadius,
			MinSpeed:    config.TargetMinSpeed,
			MaxSpeed:    config.TargetMaxSpeed,
			MinLifetime: config.TargetMinLifetime,
			MaxLifetime: config.TargetMaxLifetime,
			Color:       ColorDef{R: 255},
		},
	}
}
