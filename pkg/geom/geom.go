// pkg/geom/geom.go
package geom

import "math"

// Vec2 — двумерный вектор в экранных координатах
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму векторов
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub возвращает разность векторов
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale возвращает вектор, умноженный на скаляр
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len возвращает длину вектора
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dot возвращает скалярное произведение
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращает нулевой вектор.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist возвращает расстояние между двумя точками
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// CirclesOverlap проверяет пересечение двух окружностей:
// расстояние между центрами не превышает суммы радиусов.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	dx := c1.X - c2.X
	dy := c1.Y - c2.Y
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}

// PointInCircle проверяет, лежит ли точка внутри окружности
func PointInCircle(p, center Vec2, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}

// SegmentCircleHit проверяет пересечение отрезка [p1, p2] с окружностью.
// Проекция центра на отрезок ограничивается его концами, после чего
// сравнивается квадрат расстояния до ближайшей точки с квадратом радиуса.
func SegmentCircleHit(p1, p2, center Vec2, radius float64) bool {
	seg := p2.Sub(p1)
	segLen := seg.Len()
	if segLen == 0 {
		return PointInCircle(p1, center, radius)
	}
	dir := seg.Scale(1 / segLen)

	// Проекция вектора от начала отрезка к центру окружности
	t := center.Sub(p1).Dot(dir)
	if t < 0 {
		t = 0
	} else if t > segLen {
		t = segLen
	}

	closest := p1.Add(dir.Scale(t))
	dx := closest.X - center.X
	dy := closest.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}
