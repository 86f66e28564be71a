// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// TargetLibrary is a map to hold all target definitions, keyed by their ID.
var TargetLibrary map[string]TargetDefinition

// LoadTargetDefinitions reads the target configuration file and populates the
// TargetLibrary. Отсутствующий файл не считается ошибкой: библиотека
// заполняется встроенными значениями по умолчанию.
func LoadTargetDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			loadDefaults()
			log.Printf("Target definitions file %q not found, using %d built-in definitions", path, len(TargetLibrary))
			return nil
		}
		return fmt.Errorf("failed to read target definitions file: %w", err)
	}

	var targetDefs []TargetDefinition
	if err := json.Unmarshal(file, &targetDefs); err != nil {
		return fmt.Errorf("failed to unmarshal target definitions: %w", err)
	}

	TargetLibrary = make(map[string]TargetDefinition)
	for _, def := range targetDefs {
		if err := validate(def); err != nil {
			return fmt.Errorf("invalid target definition %q: %w", def.ID, err)
		}
		TargetLibrary[def.ID] = def
	}

	log.Printf("Loaded %d target definitions", len(TargetLibrary))
	return nil
}

func validate(def TargetDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("empty id")
	}
	if def.Kind != KindNormal && def.Kind != KindBomb {
		return fmt.Errorf("unknown kind %q", def.Kind)
	}
	if def.MinRadius <= 0 || def.MaxRadius < def.MinRadius {
		return fmt.Errorf("bad radius range [%f, %f]", def.MinRadius, def.MaxRadius)
	}
	if def.MinSpeed <= 0 || def.MaxSpeed < def.MinSpeed {
		return fmt.Errorf("bad speed range [%f, %f]", def.MinSpeed, def.MaxSpeed)
	}
	if def.MinLifetime <= 0 || def.MaxLifetime < def.MinLifetime {
		return fmt.Errorf("bad lifetime range [%f, %f]", def.MinLifetime, def.MaxLifetime)
	}
	return nil
}
