// internal/component/session.go
package component

// Phase — фаза игры
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// Session — счёт, жизни и уровень текущей партии
type Session struct {
	Score int
	Lives int
	Level int
	Phase Phase
	Muted bool
}

// GameOver сообщает, закончилась ли партия
func (s *Session) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused сообщает, стоит ли игра на паузе
func (s *Session) Paused() bool {
	return s.Phase == PhasePaused
}
