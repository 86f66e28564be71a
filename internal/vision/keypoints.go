// internal/vision/keypoints.go
package vision

import "github.com/nxu-game/gaze-laser-game/pkg/geom"

// Keypoints — нормализованные ключевые точки лица одного кадра.
// Координаты лежат в [0,1] относительно размеров кадра; зеркалирование
// по горизонтали выполняется до распознавания, поэтому точки уже
// соответствуют изображению, которое видит игрок.
type Keypoints struct {
	FaceDetected bool
	LeftEye      geom.Vec2
	RightEye     geom.Vec2
	NoseTip      geom.Vec2
}
