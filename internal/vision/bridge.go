// internal/vision/bridge.go
package vision

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"gocv.io/x/gocv"

	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

const (
	bridgeReadTimeout  = 5 * time.Second
	bridgeWriteTimeout = 2 * time.Second
	bridgePingInterval = 25 * time.Second
)

// wirePoint — нормализованная точка в ответе сайдкара
type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// wireKeypoints — формат ответа MediaPipe-сайдкара на один кадр
type wireKeypoints struct {
	Face     bool      `json:"face"`
	LeftEye  wirePoint `json:"left_eye"`
	RightEye wirePoint `json:"right_eye"`
	NoseTip  wirePoint `json:"nose_tip"`
}

// BridgeDetector отправляет JPEG-кадры MediaPipe-сайдкару по вебсокету
// и получает обратно нормализованные ключевые точки лица.
type BridgeDetector struct {
	conn *websocket.Conn
}

// NewBridgeDetector подключается к сайдкару по адресу вида
// ws://127.0.0.1:8765/landmarks.
func NewBridgeDetector(url string) (*BridgeDetector, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to landmark sidecar at %s: %w", url, err)
	}

	conn.SetReadLimit(1 << 20) // 1MB
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(bridgeReadTimeout))
	})

	d := &BridgeDetector{conn: conn}
	go d.pingLoop()
	return d, nil
}

func (d *BridgeDetector) pingLoop() {
	ticker := time.NewTicker(bridgePingInterval)
	defer ticker.Stop()
	for range ticker.C {
		if err := d.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(bridgeWriteTimeout)); err != nil {
			return
		}
	}
}

// Detect кодирует кадр в JPEG, отправляет его сайдкару и ждёт ответ.
// Вызывается только из горутины захвата, поэтому обходится без блокировок.
func (d *BridgeDetector) Detect(frame *gocv.Mat) (Keypoints, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		return Keypoints{}, fmt.Errorf("jpeg encode failed: %w", err)
	}
	defer buf.Close()

	if err := d.conn.SetWriteDeadline(time.Now().Add(bridgeWriteTimeout)); err != nil {
		return Keypoints{}, err
	}
	if err := d.conn.WriteMessage(websocket.BinaryMessage, buf.GetBytes()); err != nil {
		return Keypoints{}, fmt.Errorf("frame send failed: %w", err)
	}

	if err := d.conn.SetReadDeadline(time.Now().Add(bridgeReadTimeout)); err != nil {
		return Keypoints{}, err
	}
	var wire wireKeypoints
	if err := d.conn.ReadJSON(&wire); err != nil {
		return Keypoints{}, fmt.Errorf("keypoints read failed: %w", err)
	}

	if !wire.Face {
		return Keypoints{}, nil
	}
	return Keypoints{
		FaceDetected: true,
		LeftEye:      pointFromWire(wire.LeftEye),
		RightEye:     pointFromWire(wire.RightEye),
		NoseTip:      pointFromWire(wire.NoseTip),
	}, nil
}

func pointFromWire(p wirePoint) geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Close закрывает соединение с сайдкаром
func (d *BridgeDetector) Close() error {
	_ = d.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(bridgeWriteTimeout),
	)
	return d.conn.Close()
}
