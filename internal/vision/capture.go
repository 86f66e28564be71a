// internal/vision/capture.go
package vision

import (
	"fmt"
	"log"
	"time"

	"gocv.io/x/gocv"
)

const maxReadBackoff = 500 * time.Millisecond

// Detector распознаёт ключевые точки лица на кадре.
// Пустой результат (FaceDetected=false) — не ошибка.
type Detector interface {
	Detect(frame *gocv.Mat) (Keypoints, error)
	Close() error
}

// CaptureSource читает кадры с камеры, прогоняет их через детектор
// и публикует последний снимок в атомарный слот.
type CaptureSource struct {
	cap      *gocv.VideoCapture
	detector Detector
	slot     latestSlot
	done     chan struct{}
	stopped  chan struct{}
}

// NewCaptureSource открывает камеру. Недоступное устройство — фатальная
// ошибка старта игры, поднимаемая вызывающему.
func NewCaptureSource(deviceID int, width, height int, detector Detector) (*CaptureSource, error) {
	cap, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("cannot open camera %d: %w", deviceID, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return nil, fmt.Errorf("camera %d is not opened", deviceID)
	}
	cap.Set(gocv.VideoCaptureFrameWidth, float64(width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(height))

	return &CaptureSource{
		cap:      cap,
		detector: detector,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// Start запускает цикл захвата в отдельной горутине
func (s *CaptureSource) Start() {
	go s.loop()
}

// Latest возвращает последний опубликованный снимок
func (s *CaptureSource) Latest() *Snapshot {
	return s.slot.load()
}

// Close останавливает цикл и освобождает камеру с детектором
func (s *CaptureSource) Close() error {
	close(s.done)
	<-s.stopped
	err := s.cap.Close()
	if derr := s.detector.Close(); err == nil {
		err = derr
	}
	return err
}

func (s *CaptureSource) loop() {
	defer close(s.stopped)

	frame := gocv.NewMat()
	defer frame.Close()

	failures := 0
	for {
		select {
		case <-s.done:
			return
		default:
		}

		if ok := s.cap.Read(&frame); !ok || frame.Empty() {
			// Отвалившаяся камера не должна крутить цикл вхолостую
			failures++
			time.Sleep(readBackoff(failures))
			continue
		}
		failures = 0

		// Зеркалим кадр до распознавания: и фон, и координаты точек
		// сразу соответствуют тому, что видит игрок.
		gocv.Flip(frame, &frame, 1)

		img, err := frame.ToImage()
		if err != nil {
			log.Printf("frame conversion failed: %v", err)
			img = nil
		}

		kp, err := s.detector.Detect(&frame)
		if err != nil {
			// Недоступный детектор не фатален: игра продолжает работать
			// с предыдущим состоянием прицела.
			log.Printf("landmark detection failed: %v", err)
			kp = Keypoints{}
		}

		s.slot.publish(&Snapshot{Frame: img, Keypoints: kp})
	}
}

// readBackoff возвращает паузу перед повторным чтением после failures
// подряд неудачных попыток: растёт линейно до верхней границы.
func readBackoff(failures int) time.Duration {
	d := time.Duration(failures) * 10 * time.Millisecond
	if d > maxReadBackoff {
		d = maxReadBackoff
	}
	return d
}
