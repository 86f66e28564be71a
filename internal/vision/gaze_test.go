package vision

import (
	"math"
	"testing"

	"github.com/nxu-game/gaze-laser-game/pkg/geom"
)

func testMapper() *Mapper {
	return NewMapper(1280, 720, 50, 3)
}

func validKeypoints() *Keypoints {
	return &Keypoints{
		FaceDetected: true,
		LeftEye:      geom.Vec2{X: 0.45, Y: 0.4},
		RightEye:     geom.Vec2{X: 0.55, Y: 0.4},
		NoseTip:      geom.Vec2{X: 0.5, Y: 0.9}, // далеко от точки между глазами
	}
}

func TestAimOriginIsEyeMidpoint(t *testing.T) {
	m := testMapper()
	aim, edge := m.Update(validKeypoints())
	if edge {
		t.Fatal("no fire edge expected on a frame without the gesture")
	}
	if !aim.Valid {
		t.Fatal("aim must be valid after a face was detected")
	}
	if aim.Origin.X != 640 || aim.Origin.Y != 288 {
		t.Fatalf("origin = %v, want (640, 288)", aim.Origin)
	}
	if d := aim.Direction.Len(); math.Abs(d-1) > 1e-9 {
		t.Fatalf("direction length = %f, want 1", d)
	}
}

func TestNoFaceHoldsLastAim(t *testing.T) {
	m := testMapper()
	first, _ := m.Update(validKeypoints())

	// 50 тиков без лица: прицел не двигается, жест не активен
	for i := 0; i < 50; i++ {
		aim, edge := m.Update(nil)
		if edge {
			t.Fatalf("tick %d: unexpected fire edge without a face", i)
		}
		if aim.Firing {
			t.Fatalf("tick %d: firing must be false without a face", i)
		}
		if aim.Origin != first.Origin {
			t.Fatalf("tick %d: origin drifted from %v to %v", i, first.Origin, aim.Origin)
		}
	}
}

func TestFireEdgeAfterDebounce(t *testing.T) {
	m := testMapper()
	kp := validKeypoints()
	kp.NoseTip = geom.Vec2{X: 0.5, Y: 0.4} // нос у точки между глазами

	for i := 1; i <= 2; i++ {
		aim, edge := m.Update(kp)
		if edge || aim.Firing {
			t.Fatalf("frame %d: gesture must not trigger before debounce", i)
		}
	}

	// Третий подряд кадр ниже порога: ровно один фронт
	aim, edge := m.Update(kp)
	if !edge || !aim.Firing {
		t.Fatal("frame 3: expected fire edge and firing=true")
	}

	// Удержание жеста не даёт повторного фронта
	_, edge = m.Update(kp)
	if edge {
		t.Fatal("frame 4: held gesture must not re-emit the edge")
	}
}

func TestGestureResetBreaksDebounce(t *testing.T) {
	m := testMapper()
	near := validKeypoints()
	near.NoseTip = geom.Vec2{X: 0.5, Y: 0.4}
	far := validKeypoints()

	m.Update(near)
	m.Update(near)
	m.Update(far) // разрыв серии
	_, edge := m.Update(near)
	if edge {
		t.Fatal("debounce counter must reset after an off-threshold frame")
	}
}

func TestNaNKeypointsRejected(t *testing.T) {
	m := testMapper()
	first, _ := m.Update(validKeypoints())

	bad := validKeypoints()
	bad.LeftEye = geom.Vec2{X: math.NaN(), Y: 0.4}
	aim, edge := m.Update(bad)
	if edge || aim.Firing {
		t.Fatal("NaN frame must not trigger the gesture")
	}
	if aim.Origin != first.Origin {
		t.Fatalf("NaN frame must hold the last aim, got %v", aim.Origin)
	}
	if math.IsNaN(aim.Origin.X) || math.IsNaN(aim.Direction.X) {
		t.Fatal("NaN leaked into aim state")
	}
}

func TestOutOfRangeKeypointsClamped(t *testing.T) {
	m := testMapper()
	kp := validKeypoints()
	kp.LeftEye = geom.Vec2{X: -0.5, Y: 2.0}
	kp.RightEye = geom.Vec2{X: 1.5, Y: -1.0}

	aim, _ := m.Update(kp)
	if aim.Origin.X < 0 || aim.Origin.X > 1280 || aim.Origin.Y < 0 || aim.Origin.Y > 720 {
		t.Fatalf("origin %v escaped the screen after clamping", aim.Origin)
	}
}
