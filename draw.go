package main

import (
	"math"
	"strings"

	rg "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/internal/game"
)

// --- palette ---
var background = rl.NewColor(30, 18, 26, 255)
var roadSurface = rl.NewColor(153, 153, 153, 255)
var roadLine = rl.NewColor(235, 235, 238, 255)
var ghostEyes = rl.NewColor(22, 22, 26, 255)
var roofColors = []rl.Color{
	rl.NewColor(170, 60, 60, 255),
	rl.NewColor(70, 90, 150, 255),
	rl.NewColor(80, 130, 80, 255),
}

func toColor(c game.Color) rl.Color {
	return rl.ColorFromNormalized(rl.NewVector4(c.R, c.G, c.B, c.A))
}

// tint multiplies a palette colour by a core colour.
func tint(base rl.Color, c game.Color) rl.Color {
	return rl.NewColor(
		uint8(float32(base.R)*c.R),
		uint8(float32(base.G)*c.G),
		uint8(float32(base.B)*c.B),
		uint8(float32(base.A)*c.A),
	)
}

type queuedText struct {
	text  string
	pos   board.Vec2
	size  float32
	color rl.Color
	align game.Align
}

type queuedButton struct {
	pos, size board.Vec2
	label     string
	textSize  float32
	enabled   bool
}

// renderer draws the core's world-space calls with raylib. Shapes go through
// the 2D camera; text and buttons are queued and drawn in screen space after
// the camera pass so they stay crisp at any zoom.
type renderer struct {
	cam      rl.Camera2D
	target   rl.Vector2
	baseZoom float32
	userZoom float32

	texts   []queuedText
	buttons []queuedButton
}

func newRenderer(width, height int) *renderer {
	cam := newCamera(width, height, board.Vec2{})
	return &renderer{cam: cam, target: cam.Target, baseZoom: cam.Zoom, userZoom: 1}
}

func (r *renderer) SetCamera(center board.Vec2) {
	r.target = toScreenSpace(center)
}

// step eases the camera towards its target and applies mouse-wheel zoom.
func (r *renderer) step(dt float32) {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		r.userZoom *= 1 + 0.1*wheel
		r.userZoom = clamp(r.userZoom, 0.4, 2.5)
	}
	if rl.IsKeyPressed(rl.KeyZero) {
		r.userZoom = 1.0
	}
	r.cam.Zoom = r.baseZoom * r.userZoom
	updateCamera(&r.cam, r.target, dt)
}

func (r *renderer) begin() {
	r.texts = r.texts[:0]
	r.buttons = r.buttons[:0]
	rl.BeginMode2D(r.cam)
}

func (r *renderer) end() {
	rl.EndMode2D()
	for _, t := range r.texts {
		r.drawText(t)
	}
	for _, b := range r.buttons {
		r.drawButton(b)
	}
}

func (r *renderer) DrawRect(pos, size board.Vec2, c game.Color) {
	rl.DrawRectangleRec(worldRect(pos, size), toColor(c))
}

// worldRect is the camera-space rectangle of a world box given by its centre.
func worldRect(pos, size board.Vec2) rl.Rectangle {
	return rl.NewRectangle(pos.X-size.X/2, -pos.Y-size.Y/2, size.X, size.Y)
}

func (r *renderer) DrawSprite(pos, size board.Vec2, index int, angle float32, c game.Color) {
	switch {
	case index >= board.SpriteRoadDeadEnd && index <= board.SpriteRoadCross:
		drawRoad(pos, size, index, angle, c)
	case index == board.SpriteGhost:
		drawGhost(pos, size, c)
	case index >= board.SpriteHouse:
		drawCottage(pos, size, index-board.SpriteHouse, c)
	}
}

// roadArms lists the open sides of each road sprite in its base orientation,
// as quarter turns clockwise from north.
var roadArms = map[int][]int{
	board.SpriteRoadDeadEnd:  {2},
	board.SpriteRoadStraight: {0, 2},
	board.SpriteRoadCorner:   {1, 2},
	board.SpriteRoadTee:      {0, 1, 2},
	board.SpriteRoadCross:    {0, 1, 2, 3},
}

// armSteps are north, east, south, west in world space.
var armSteps = [4]board.Vec2{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

func drawRoad(pos, size board.Vec2, index int, angle float32, c game.Color) {
	turns := int(math.Round(float64(angle)/(math.Pi/2))) % 4
	surface := tint(roadSurface, c)
	lane := tint(roadLine, c)
	width := size.X * 0.6
	rl.DrawRectangleRec(worldRect(pos, board.V(width, width)), surface)
	for _, arm := range roadArms[index] {
		dir := (arm + turns + 4) % 4
		step := armSteps[dir]
		mid := pos.Add(step.Scale(size.X / 4))
		armSize := board.V(width, size.Y/2)
		markSize := board.V(size.X*0.06, size.Y*0.25)
		if step.Y == 0 {
			armSize = board.V(size.X/2, width)
			markSize = board.V(size.X*0.25, size.Y*0.06)
		}
		rl.DrawRectangleRec(worldRect(mid, armSize), surface)
		rl.DrawRectangleRec(worldRect(mid, markSize), lane)
	}
}

func drawGhost(pos, size board.Vec2, c game.Color) {
	body := toColor(c)
	r := size.X * 0.35
	head := toScreenSpace(pos.Add(board.V(0, size.Y*0.1)))
	rl.DrawCircleV(head, r, body)
	rl.DrawRectangleRec(worldRect(pos.Add(board.V(0, -size.Y*0.15)), board.V(2*r, size.Y*0.5)), body)
	// ragged hem
	for i := 0; i < 3; i++ {
		x := pos.X - r + r/3 + float32(i)*2*r/3
		rl.DrawCircleV(toScreenSpace(board.V(x, pos.Y-size.Y*0.4)), r/3, body)
	}
	eyes := ghostEyes
	eyes.A = body.A
	for _, dx := range []float32{-r / 2.5, r / 2.5} {
		rl.DrawCircleV(toScreenSpace(pos.Add(board.V(dx, size.Y*0.15))), r/5, eyes)
	}
}

func drawCottage(pos, size board.Vec2, variant int, c game.Color) {
	walls := toColor(c)
	roof := tint(roofColors[variant%len(roofColors)], c)
	rl.DrawRectangleRec(worldRect(pos.Add(board.V(0, -size.Y*0.15)), board.V(size.X*0.8, size.Y*0.6)), walls)
	top := toScreenSpace(pos.Add(board.V(0, size.Y*0.5)))
	left := toScreenSpace(pos.Add(board.V(-size.X*0.5, size.Y*0.15)))
	right := toScreenSpace(pos.Add(board.V(size.X*0.5, size.Y*0.15)))
	rl.DrawTriangle(top, left, right, roof)
}

func (r *renderer) DrawText(text string, pos board.Vec2, size float32, c game.Color, align game.Align) {
	r.texts = append(r.texts, queuedText{text, pos, size, toColor(c), align})
}

func (r *renderer) DrawButton(pos, size board.Vec2, label string, textSize float32, enabled bool) {
	r.buttons = append(r.buttons, queuedButton{pos, size, label, textSize, enabled})
}

// drawText lays out lines centred vertically on the anchor.
func (r *renderer) drawText(t queuedText) {
	anchor := rl.GetWorldToScreen2D(toScreenSpace(t.pos), r.cam)
	px := t.size * r.cam.Zoom
	lines := strings.Split(t.text, "\n")
	y := anchor.Y - px*float32(len(lines))/2
	font := rl.GetFontDefault()
	spacing := px / 10
	for _, line := range lines {
		w := rl.MeasureTextEx(font, line, px, spacing).X
		x := anchor.X - w/2
		switch t.align {
		case game.AlignLeft:
			x = anchor.X
		case game.AlignRight:
			x = anchor.X - w
		}
		rl.DrawTextEx(font, line, rl.NewVector2(x, y), px, spacing, t.color)
		y += px
	}
}

// drawButton renders with raygui for the look only. Clicks are decided by the
// game's ButtonSet so the result of rg.Button is ignored.
func (r *renderer) drawButton(b queuedButton) {
	rect := worldRect(b.pos, b.size)
	tl := rl.GetWorldToScreen2D(rl.NewVector2(rect.X, rect.Y), r.cam)
	bounds := rl.NewRectangle(tl.X, tl.Y, rect.Width*r.cam.Zoom, rect.Height*r.cam.Zoom)

	rg.SetStyle(rg.DEFAULT, rg.TEXT_SIZE, int64(b.textSize*r.cam.Zoom))
	if !b.enabled {
		rg.Disable()
	}
	rg.Button(bounds, b.label)
	rg.Enable()
}
