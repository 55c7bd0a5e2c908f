package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerBoltChar  = '|'
	AlienBoltChar   = '!'
	DefenseLineChar = '_'
	LifeChar        = '♥'
)

// AlienGlyphs holds the sprite for each variant, bottom rows first.
var AlienGlyphs = [Variants]string{"/o\\", "{@}", "<W>"}

// AlienColors holds the color for each variant.
var AlienColors = [Variants]core.Color{core.ColorGreen, core.ColorCyan, core.ColorMagenta}

// ShipGlyph is the player's ship sprite.
const ShipGlyph = "/=^=\\"

// cellRow maps a world y (growing up) to a screen row below the HUD.
func (g *Game) cellRow(y float64) int {
	return hudRows + core.FloorInt(g.worldH-y)
}

// spanStart returns the first screen column of an entity of width w
// centred at x.
func spanStart(x, w float64) int {
	return core.FloorInt(x - w/2 + 0.5)
}

// drawSprite draws glyph centred at (x, y), stretching or trimming it to
// the entity's width in cells.
func (g *Game) drawSprite(dst *core.Screen, x, y, w float64, glyph string, c core.Color) {
	runes := []rune(glyph)
	n := core.FloorInt(w + 0.5)
	if n < 1 {
		n = 1
	}
	col := spanStart(x, w)
	row := g.cellRow(y)
	for i := range n {
		r := runes[len(runes)-1]
		if i < len(runes) {
			r = runes[i]
		}
		dst.SetColored(col+i, row, r, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	if g.wave != nil && g.state != StateIntermission {
		g.renderDefenseLine(dst)
		g.renderAliens(dst)
		g.renderShip(dst)
		g.renderBolts(dst)
	}
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives and wave indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightYellow)

	livesText := "Lives: " + strings.Repeat(string(LifeChar), max(g.lives, 0))
	x := (dst.Width() - len([]rune(livesText))) / 2
	dst.DrawTextColored(x, 0, livesText, core.ColorBrightRed)

	var waveText string
	if g.mode == ModeEndless {
		waveText = fmt.Sprintf("Wave: %d", g.waveNum)
	} else {
		waveText = fmt.Sprintf("Wave: %d/%d", g.waveNum, g.cfg.Gameplay.Waves)
	}
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)
}

// renderDefenseLine marks the height the formation must not cross.
func (g *Game) renderDefenseLine(dst *core.Screen) {
	row := g.cellRow(g.wave.geo.DefenseLine)
	dst.DrawHLine(0, row, dst.Width(), DefenseLineChar, core.ColorGray)
}

// renderAliens draws the remaining formation.
func (g *Game) renderAliens(dst *core.Screen) {
	for _, a := range g.wave.Aliens() {
		v := a.Variant % Variants
		g.drawSprite(dst, a.X, a.Y, a.W, AlienGlyphs[v], AlienColors[v])
	}
}

// renderShip draws the ship, blinking while a respawn is pending.
func (g *Game) renderShip(dst *core.Screen) {
	ship, ok := g.wave.Ship()
	if ok {
		g.drawSprite(dst, ship.X, ship.Y, ship.W, ShipGlyph, core.ColorBrightGreen)
		return
	}
	if g.state == StateRespawn && g.wave.Lives() > 0 && (g.tickCount/8)%2 == 0 {
		geo := g.wave.geo
		g.drawSprite(dst, g.wave.SavedX(), geo.ShipY, geo.ShipW, ShipGlyph, core.ColorGray)
	}
}

// renderBolts draws every live bolt at its centre cell.
func (g *Game) renderBolts(dst *core.Screen) {
	for _, b := range g.wave.Bolts() {
		r, c := AlienBoltChar, core.ColorRed
		if b.PlayerOwned {
			r, c = PlayerBoltChar, core.ColorBrightYellow
		}
		dst.SetColored(core.FloorInt(b.X), g.cellRow(b.Y), r, c)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateIntermission:
		g.drawCenteredBox(dst, fmt.Sprintf("WAVE %d CLEARED", g.waveNum), "Get ready...")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		title := "GAME OVER"
		if g.Outcome() == "breached" {
			title = "THE INVADERS LANDED"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, title, subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "EARTH IS SAFE!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	rect := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(rect, ' ')
	dst.DrawBox(rect, core.ColorWhite)

	titleX := rect.X + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, rect.Y+1, title, core.ColorBrightYellow)

	subtitleX := rect.X + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, rect.Y+3, subtitle)
}
