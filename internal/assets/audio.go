// internal/assets/audio.go
package assets

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/nxu-game/gaze-laser-game/internal/event"
)

const sampleRate = 44100

// Имена звуковых эффектов
const (
	CueFire     = "fire"
	CueHit      = "hit-normal"
	CueBombHit  = "hit-bomb"
	CueDamage   = "damage"
	CueGameOver = "game-over"
)

// cueFiles — какие файлы в каталоге assets/sounds соответствуют эффектам
var cueFiles = map[string]string{
	CueFire:     "laser.wav",
	CueHit:      "bomb0.mp3",
	CueBombHit:  "bomb1.mp3",
	CueDamage:   "bomb1.mp3",
	CueGameOver: "game_over.mp3",
}

const (
	soundsSubdir = "sounds"
	musicFile    = "background.mp3"
)

// cuePath возвращает путь к звуковому файлу внутри каталога ассетов
func cuePath(dir, file string) string {
	return filepath.Join(dir, soundsSubdir, file)
}

// AudioManager загружает звуки и проигрывает их по игровым событиям.
// Отсутствующие файлы пропускаются: эффект просто не играется.
// Реализует event.Listener и подписывается на диспетчер.
type AudioManager struct {
	ctx   *audio.Context
	cues  map[string][]byte // декодированный PCM
	music *audio.Player
	muted bool
}

// NewAudioManager загружает звуки из каталога dir и подписывается
// на игровые события.
func NewAudioManager(dir string, dispatcher *event.Dispatcher) *AudioManager {
	m := &AudioManager{
		ctx:  audio.NewContext(sampleRate),
		cues: make(map[string][]byte),
	}

	for cue, file := range cueFiles {
		data, err := decodeFile(cuePath(dir, file))
		if err != nil {
			log.Printf("sound %q unavailable: %v", cue, err)
			continue
		}
		m.cues[cue] = data
	}
	m.loadMusic(cuePath(dir, musicFile))

	dispatcher.Subscribe(event.StrongLaserFired, m)
	dispatcher.Subscribe(event.TargetDestroyed, m)
	dispatcher.Subscribe(event.BombDefused, m)
	dispatcher.Subscribe(event.EyeHit, m)
	dispatcher.Subscribe(event.GameOver, m)
	dispatcher.Subscribe(event.GameRestarted, m)

	return m
}

// OnEvent реализует event.Listener: игровое событие — звуковой сигнал
func (m *AudioManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.StrongLaserFired:
		m.Play(CueFire)
	case event.TargetDestroyed:
		m.Play(CueHit)
	case event.BombDefused:
		m.Play(CueBombHit)
	case event.EyeHit:
		m.Play(CueDamage)
	case event.GameOver:
		m.Play(CueGameOver)
		m.StopMusic()
	case event.GameRestarted:
		m.StartMusic()
	}
}

// Play проигрывает эффект, если он загружен и звук не выключен
func (m *AudioManager) Play(cue string) {
	if m.muted {
		return
	}
	data, ok := m.cues[cue]
	if !ok {
		return
	}
	audio.NewPlayerFromBytes(m.ctx, data).Play()
}

// StartMusic запускает фоновую музыку с начала
func (m *AudioManager) StartMusic() {
	if m.music == nil || m.muted {
		return
	}
	if err := m.music.Rewind(); err != nil {
		log.Printf("music rewind failed: %v", err)
		return
	}
	m.music.Play()
}

// PauseMusic приостанавливает музыку (пауза игры)
func (m *AudioManager) PauseMusic() {
	if m.music != nil {
		m.music.Pause()
	}
}

// ResumeMusic продолжает музыку после паузы
func (m *AudioManager) ResumeMusic() {
	if m.music != nil && !m.muted {
		m.music.Play()
	}
}

// StopMusic останавливает музыку (конец партии)
func (m *AudioManager) StopMusic() {
	if m.music != nil {
		m.music.Pause()
	}
}

// ToggleMute переключает звук целиком и возвращает новое состояние
func (m *AudioManager) ToggleMute() bool {
	m.muted = !m.muted
	if m.music != nil {
		if m.muted {
			m.music.Pause()
		} else {
			m.music.Play()
		}
	}
	return m.muted
}

// loadMusic подготавливает зацикленный плеер фоновой музыки
func (m *AudioManager) loadMusic(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("background music unavailable: %v", err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		log.Printf("background music read failed: %v", err)
		return
	}

	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		log.Printf("background music decode failed: %v", err)
		return
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := m.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("background music player failed: %v", err)
		return
	}
	m.music = player
}

// decodeFile декодирует wav или mp3 файл в PCM
func decodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	if strings.HasSuffix(path, ".wav") {
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	} else {
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}
