package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual constants
const (
	PipeChar       = '█'
	PipeCapChar    = '▀'
	PipeCapUpChar  = '▄'
	GroundChar     = '▓'
	GroundTopChar  = '▀'
	BodyChar       = '●'
	WingUpChar     = '^'
	WingDownChar   = 'v'
	BeakChar       = '>'
	MissileChar    = '═'
	MissileTipChar = '▶'
	BlastChar      = '*'
	ParticleChar   = '•'
	FadedChar      = '·'
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, world WorldView) viewport {
	v := viewport{w: dst.Width(), h: dst.Height()}
	if world.Width > 0 {
		v.sx = float64(v.w) / world.Width
	}
	if world.Height > 0 {
		v.sy = float64(v.h) / world.Height
	}
	return v
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// span converts a world extent to a cell count of at least one.
func (v viewport) span(from, size, scale float64) int {
	return core.Max(1, int(math.Ceil((from+size)*scale))-int(math.Floor(from*scale)))
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.run == nil {
		return
	}
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot to dst. It reads nothing but the snapshot.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	v := newViewport(dst, snap.World)
	groundRow := v.row(snap.World.Height - snap.World.GroundHeight)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o, groundRow)
	}

	sky := core.NewRect(0, 0, v.w, groundRow)
	for _, p := range snap.Particles {
		x, y := v.col(p.X), v.row(p.Y)
		if !sky.Contains(x, y) {
			continue
		}
		glyph, color := ParticleChar, core.ColorCyan
		if p.Alpha(snap.Trail) < 0.5 {
			glyph, color = FadedChar, core.ColorGray
		}
		dst.SetColored(x, y, glyph, color)
	}

	for _, p := range snap.Projectiles {
		drawProjectile(dst, v, p)
	}

	drawFlyer(dst, v, snap.Flyer)

	// Ground
	dst.DrawHLine(0, groundRow, v.w, GroundTopChar, core.ColorBrightGreen)
	dst.DrawRect(core.NewRect(0, groundRow+1, v.w, v.h-groundRow-1), GroundChar, core.ColorBrown)

	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseNotStarted:
		drawCenteredMessage(dst, "FLAPPY", "Space to flap  |  Space to start")
	case snap.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space or R to restart", snap.Score))
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawObstacle renders a pipe pair. Recently hit pipes are drawn red.
func drawObstacle(dst *core.Screen, v viewport, o ObstacleView, groundRow int) {
	color := core.ColorGreen
	if o.Hit {
		color = core.ColorBrightRed
	}

	x := v.col(o.X)
	w := v.span(o.X, o.Width, v.sx)
	top := v.row(o.GapTop)
	bottom := v.row(o.GapBottom)

	dst.DrawRect(core.NewRect(x, 0, w, top), PipeChar, color)
	if top > 0 {
		dst.DrawHLine(x, top-1, w, PipeCapUpChar, color)
	}

	dst.DrawRect(core.NewRect(x, bottom, w, groundRow-bottom), PipeChar, color)
	if bottom < groundRow {
		dst.DrawHLine(x, bottom, w, PipeCapChar, color)
	}
}

// drawFlyer renders the flyer as a body, a beak and an animated wing.
func drawFlyer(dst *core.Screen, v viewport, f FlyerView) {
	x := v.col(f.X)
	y := v.row(f.Y)
	w := v.span(f.X, f.Width, v.sx)
	h := v.span(f.Y, f.Height, v.sy)

	dst.DrawRect(core.NewRect(x, y, w, h), BodyChar, core.ColorBrightYellow)
	dst.SetColored(x+w, y+h/2, BeakChar, core.ColorOrange)

	wing := WingDownChar
	if f.WingUp {
		wing = WingUpChar
	}
	dst.SetColored(x, y+h/2, wing, core.ColorYellow)
}

// drawProjectile renders a missile in flight or its explosion.
func drawProjectile(dst *core.Screen, v viewport, p ProjectileView) {
	if !p.Exploding {
		x := v.col(p.X)
		y := v.row(p.Y)
		w := v.span(p.X, p.Width, v.sx)
		dst.DrawHLine(x, y, w, MissileChar, core.ColorRed)
		dst.SetColored(x+w, y, MissileTipChar, core.ColorOrange)
		return
	}

	cx := v.col(p.X + p.Width/2)
	cy := v.row(p.Y)
	rx := int(math.Round(p.Radius * v.sx))
	ry := int(math.Round(p.Radius * v.sy))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if rx > 0 && ry > 0 && dx*dx*ry*ry+dy*dy*rx*rx > rx*rx*ry*ry {
				continue
			}
			color := core.ColorOrange
			if (dx+dy)%2 == 0 {
				color = core.ColorBrightYellow
			}
			dst.SetColored(cx+dx, cy+dy, BlastChar, color)
		}
	}
}

// drawHUD renders score, ammo and the cooldown indicator.
func drawHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
	if snap.Scaling {
		dst.DrawTextColored(2, 1, fmt.Sprintf(" Speed: %.1f ", snap.PipeSpeed), core.ColorGray)
	}

	if !snap.Missiles {
		return
	}
	status := "READY"
	color := core.ColorBrightGreen
	switch {
	case snap.Ammo == 0:
		status = "EMPTY"
		color = core.ColorGray
	case snap.Cooldown > 0:
		status = fmt.Sprintf("COOLDOWN %d", snap.Cooldown)
		color = core.ColorYellow
	}
	text := fmt.Sprintf(" Missiles: %d  %s ", snap.Ammo, status)
	dst.DrawTextColored(core.Clamp(dst.Width()-len(text)-2, 0, dst.Width()), 0, text, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
