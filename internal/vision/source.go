// internal/vision/source.go
package vision

import (
	"image"
	"sync/atomic"
)

// Snapshot — последний результат захвата: кадр для фона и ключевые
// точки для прицеливания. Снимок неизменяем после публикации.
type Snapshot struct {
	Frame     image.Image // nil, если кадр недоступен
	Keypoints Keypoints
}

// Source — фоновый производитель снимков. Главный игровой цикл читает
// последний снимок неразрушающе; устаревшее значение допустимо и просто
// повторно использует предыдущее состояние прицела.
type Source interface {
	// Latest возвращает последний опубликованный снимок или nil,
	// если ещё ни один кадр не был обработан.
	Latest() *Snapshot

	// Start запускает фоновый цикл захвата.
	Start()

	// Close останавливает цикл и освобождает ресурсы.
	Close() error
}

// latestSlot — одноместный атомарный слот «последнее значение побеждает».
// Единственная точка передачи данных между горутиной захвата и игровым
// циклом, блокировки не требуются.
type latestSlot struct {
	ptr atomic.Pointer[Snapshot]
}

func (s *latestSlot) publish(snap *Snapshot) {
	s.ptr.Store(snap)
}

func (s *latestSlot) load() *Snapshot {
	return s.ptr.Load()
}
