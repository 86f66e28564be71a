// internal/vision/nop.go
package vision

import "gocv.io/x/gocv"

// NopDetector — заглушка на случай недоступного сайдкара: лицо никогда
// не обнаруживается, игра продолжает работать с нейтральным прицелом.
type NopDetector struct{}

func (NopDetector) Detect(frame *gocv.Mat) (Keypoints, error) {
	return Keypoints{}, nil
}

func (NopDetector) Close() error {
	return nil
}
