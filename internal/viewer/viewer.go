// Package viewer is an ebiten debug renderer for a match. It draws the
// active player's planning hints and forwards input to controls.Session.
package viewer

import (
	"image/color"

	"github.com/Namek/battle-tactics/internal/viewer/controls"
	"github.com/Namek/battle-tactics/pkg/api"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudWidth = 360

var (
	colBackground = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	colFloor      = color.RGBA{R: 40, G: 44, B: 40, A: 255}
	colWall       = color.RGBA{R: 120, G: 120, B: 110, A: 255}
	colReachable  = color.RGBA{R: 60, G: 120, B: 60, A: 110}
	colCursor     = color.RGBA{R: 240, G: 240, B: 120, A: 255}
	colFrustum    = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	colPeek       = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	colDead       = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

var playerColors = []color.RGBA{
	{R: 230, G: 80, B: 70, A: 255},
	{R: 80, G: 140, B: 240, A: 255},
	{R: 230, G: 190, B: 60, A: 255},
	{R: 160, G: 90, B: 220, A: 255},
}

// keyBindings maps keys to input commands for the active player.
var keyBindings = map[ebiten.Key]string{
	ebiten.KeyP:         api.CmdPeek,
	ebiten.KeyS:         api.CmdShoot,
	ebiten.KeyW:         api.CmdWait,
	ebiten.KeyBackspace: api.CmdUndo,
	ebiten.KeyU:         api.CmdUndo,
	ebiten.KeyEnter:     api.CmdFinish,
	ebiten.KeySpace:     api.CmdFinish,
}

// Viewer implements ebiten.Game.
type Viewer struct {
	session *controls.Session
	width   int
	height  int
	coneBuf *ebiten.Image
}

// New sizes the window after the map.
func New(s *controls.Session) *Viewer {
	g := s.View().Grid
	w := int(float64(g.Width) * g.TileSize)
	h := int(float64(g.Height) * g.TileSize)
	return &Viewer{
		session: s,
		width:   w + hudWidth,
		height:  max(h, 240),
		coneBuf: ebiten.NewImage(w, h),
	}
}

// Size returns the window size in pixels.
func (v *Viewer) Size() (int, int) { return v.width, v.height }

func (v *Viewer) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		v.session.ClickPoint(float64(mx), float64(my))
	}
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			v.session.Send(action, nil)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.session.Restart(); err != nil {
			logger.Log.WithError(err).Error("Restart failed.")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(v.session.EventLog()); err != nil {
			logger.Log.WithField("component", "viewer").WithError(err).Warn("Clipboard unavailable.")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		script, err := v.session.ScriptYAML()
		if err == nil {
			err = clipboard.WriteAll(script)
		}
		if err != nil {
			logger.Log.WithField("component", "viewer").WithError(err).Warn("Could not copy script.")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	frame := v.session.View()

	// 1. Карта и подсказки
	drawGrid(screen, frame.Grid)
	ts := float32(frame.Grid.TileSize)
	for _, c := range frame.Reachable {
		vector.FillRect(screen, float32(c.Col)*ts, float32(c.Row)*ts, ts, ts, colReachable, false)
	}

	// 2. Конусы через отдельный буфер, чтобы перекрытия не пересвечивались
	v.coneBuf.Clear()
	if frame.Frustum != nil {
		fillCone(v.coneBuf, *frame.Frustum, colFrustum)
	}
	for _, c := range frame.PeekCones {
		fillCone(v.coneBuf, c, colPeek)
	}
	opts := &ebiten.DrawImageOptions{}
	opts.ColorScale.ScaleAlpha(0.25)
	screen.DrawImage(v.coneBuf, opts)

	// 3. Игроки
	for _, p := range frame.Players {
		drawPlayer(screen, p, ts, p.Index == frame.ActivePlayer)
	}

	// 4. HUD
	x := int(float64(frame.Grid.Width)*frame.Grid.TileSize) + 8
	for i, line := range v.session.HUD() {
		ebitenutil.DebugPrintAt(screen, line, x, 8+i*16)
	}
	ebitenutil.DebugPrintAt(screen, "click move  P peek  S shoot  W wait", x, v.height-48)
	ebitenutil.DebugPrintAt(screen, "U undo  Enter finish  R restart  C log  Y script", x, v.height-32)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}

func drawGrid(screen *ebiten.Image, g api.GridMeta) {
	ts := float32(g.TileSize)
	for row, cells := range g.Walls {
		for col, wall := range cells {
			c := colFloor
			if wall {
				c = colWall
			}
			vector.FillRect(screen, float32(col)*ts, float32(row)*ts, ts-1, ts-1, c, false)
		}
	}
}

func fillCone(dst *ebiten.Image, c api.ConeView, clr color.RGBA) {
	if len(c.Points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(c.Origin.X), float32(c.Origin.Y))
	for _, p := range c.Points {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, &vector.FillOptions{}, drawOpts)
}

func drawPlayer(screen *ebiten.Image, p api.PlayerView, ts float32, active bool) {
	clr := playerColors[p.Index%len(playerColors)]
	if !p.Alive {
		clr = colDead
	}
	cx := (float32(p.Cell.Col) + 0.5) * ts
	cy := (float32(p.Cell.Row) + 0.5) * ts
	vector.FillCircle(screen, cx, cy, ts*0.35, clr, true)

	if p.Cursor != p.Cell && p.Alive {
		qx := (float32(p.Cursor.Col) + 0.5) * ts
		qy := (float32(p.Cursor.Row) + 0.5) * ts
		vector.StrokeLine(screen, cx, cy, qx, qy, 1, clr, true)
		vector.StrokeCircle(screen, qx, qy, ts*0.3, 1.5, clr, true)
	}
	if active {
		x := float32(p.Cursor.Col) * ts
		y := float32(p.Cursor.Row) * ts
		vector.StrokeRect(screen, x+1, y+1, ts-3, ts-3, 2, colCursor, false)
	}
}
