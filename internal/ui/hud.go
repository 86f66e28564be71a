// internal/ui/hud.go
package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/nxu-game/gaze-laser-game/internal/component"
	"github.com/nxu-game/gaze-laser-game/internal/config"
)

const fontFile = "fonts/game.ttf"

// HUD рисует счёт, уровень, жизни и FPS, а также оверлеи паузы
// и конца партии.
type HUD struct {
	face    font.Face
	bigFace font.Face
}

// NewHUD загружает шрифт из каталога ассетов; при отсутствии файла
// используется встроенный растровый шрифт.
func NewHUD(assetsDir string) *HUD {
	face, bigFace := loadFaces(filepath.Join(assetsDir, fontFile))
	return &HUD{face: face, bigFace: bigFace}
}

// Draw рисует игровой HUD в верхнем левом углу
func (h *HUD) Draw(screen *ebiten.Image, session *component.Session, fps float64) {
	lines := []string{
		fmt.Sprintf("Score: %d", session.Score),
		fmt.Sprintf("Level: %d", session.Level),
		fmt.Sprintf("Lives: %d", session.Lives),
		fmt.Sprintf("FPS: %.0f", fps),
	}
	y := 30
	for _, line := range lines {
		text.Draw(screen, line, h.face, 20, y, config.TextLightColor)
		y += 26
	}
	if session.Muted {
		text.Draw(screen, "MUTED", h.face, 20, y, config.TextLightColor)
	}
}

// DrawPauseOverlay затемняет экран и пишет подсказку
func (h *HUD) DrawPauseOverlay(screen *ebiten.Image) {
	h.overlay(screen)
	h.centered(screen, h.bigFace, "PAUSED", config.ScreenHeight/2-20)
	h.centered(screen, h.face, "Press SPACE to resume", config.ScreenHeight/2+30)
}

// DrawGameOverOverlay показывает финальный счёт и подсказку рестарта
func (h *HUD) DrawGameOverOverlay(screen *ebiten.Image, score int) {
	h.overlay(screen)
	h.centered(screen, h.bigFace, "GAME OVER", config.ScreenHeight/2-40)
	h.centered(screen, h.face, fmt.Sprintf("Final score: %d", score), config.ScreenHeight/2+10)
	h.centered(screen, h.face, "Press SPACE to restart", config.ScreenHeight/2+45)
}

func (h *HUD) overlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

// centered рисует строку по центру экрана по горизонтали
func (h *HUD) centered(screen *ebiten.Image, face font.Face, str string, y int) {
	bounds := text.BoundString(face, str)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, str, face, x, y, config.TextLightColor)
}

// loadFaces загружает TTF в двух размерах с запасным растровым шрифтом
func loadFaces(path string) (font.Face, font.Face) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("font unavailable, using builtin face: %v", err)
		return basicfont.Face7x13, basicfont.Face7x13
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("font parse failed, using builtin face: %v", err)
		return basicfont.Face7x13, basicfont.Face7x13
	}

	face, err1 := opentype.NewFace(tt, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingVertical})
	bigFace, err2 := opentype.NewFace(tt, &opentype.FaceOptions{Size: 48, DPI: 72, Hinting: font.HintingVertical})
	if err1 != nil || err2 != nil {
		log.Printf("font face creation failed, using builtin face")
		return basicfont.Face7x13, basicfont.Face7x13
	}
	return face, bigFace
}
