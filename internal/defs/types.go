// internal/defs/types.go
package defs

// TargetKind — закрытый набор типов целей
type TargetKind string

const (
	KindNormal TargetKind = "normal"
	KindBomb   TargetKind = "bomb"
)

// ColorDef — цвет в JSON-описании
type ColorDef struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// TargetDefinition описывает параметры одного типа цели.
// Нулевой RandomColor означает, что цвет берётся из Color.
type TargetDefinition struct {
	ID          string     `json:"id"`
	Kind        TargetKind `json:"kind"`
	Weight      int        `json:"weight"` // вес при взвешенном выборе
	MinRadius   float64    `json:"min_radius"`
	MaxRadius   float64    `json:"max_radius"`
	MinSpeed    float64    `json:"min_speed"` // пикселей в секунду
	MaxSpeed    float64    `json:"max_speed"`
	MinLifetime float64    `json:"min_lifetime"` // секунды
	MaxLifetime float64    `json:"max_lifetime"`
	Color       ColorDef   `json:"color"`
	RandomColor bool       `json:"random_color"`
}
