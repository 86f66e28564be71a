package geom

import "testing"

func TestCirclesOverlap(t *testing.T) {
	// Сценарий из игры: цель (100,100) r=10, выстрел (105,100) r=8,
	// расстояние 5 <= 18 — пересечение есть.
	if !CirclesOverlap(Vec2{100, 100}, 10, Vec2{105, 100}, 8) {
		t.Fatal("expected overlap for distance 5 and radii sum 18")
	}
	if CirclesOverlap(Vec2{0, 0}, 5, Vec2{20, 0}, 5) {
		t.Fatal("expected no overlap for distance 20 and radii sum 10")
	}
	// Касание засчитывается как пересечение
	if !CirclesOverlap(Vec2{0, 0}, 5, Vec2{10, 0}, 5) {
		t.Fatal("expected touching circles to overlap")
	}
}

func TestSegmentCircleHit(t *testing.T) {
	// Отрезок проходит над окружностью на расстоянии 3 < r=5
	if !SegmentCircleHit(Vec2{-10, 3}, Vec2{10, 3}, Vec2{0, 0}, 5) {
		t.Fatal("expected hit: segment passes within radius")
	}
	// Проходит мимо: расстояние 7 > r=5
	if SegmentCircleHit(Vec2{-10, 7}, Vec2{10, 7}, Vec2{0, 0}, 5) {
		t.Fatal("expected miss: segment passes outside radius")
	}
	// Окружность за концом отрезка
	if SegmentCircleHit(Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0}, 5) {
		t.Fatal("expected miss: circle lies beyond segment end")
	}
	// Но конец отрезка внутри окружности — попадание
	if !SegmentCircleHit(Vec2{0, 0}, Vec2{16, 0}, Vec2{20, 0}, 5) {
		t.Fatal("expected hit: segment end inside circle")
	}
	// Вырожденный отрезок сводится к проверке точки
	if !SegmentCircleHit(Vec2{1, 1}, Vec2{1, 1}, Vec2{0, 0}, 5) {
		t.Fatal("expected hit for degenerate segment inside circle")
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if d := v.Len() - 1; d > 1e-9 || d < -1e-9 {
		t.Fatalf("normalized length = %f, want 1", v.Len())
	}
	z := Vec2{}.Normalize()
	if z.X != 0 || z.Y != 0 {
		t.Fatalf("zero vector normalize = %v, want zero", z)
	}
}
