package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type squareGridGeometry struct {
	OriginX  float32
	OriginY  float32
	CellSize float32
	Cols     int
	Rows     int
	DrawRect rl.Rectangle
}

// computeSquareGridGeometry fits cols x rows square cells into area,
// centred on both axes.
func computeSquareGridGeometry(area rl.Rectangle, cols, rows int) (squareGridGeometry, bool) {
	if cols <= 0 || rows <= 0 || area.Width <= 1 || area.Height <= 1 {
		return squareGridGeometry{}, false
	}
	cellSize := float32(math.Min(float64(area.Width/float32(cols)), float64(area.Height/float32(rows))))
	if cellSize < 1 {
		cellSize = 1
	}
	drawWidth := cellSize * float32(cols)
	drawHeight := cellSize * float32(rows)
	originX := area.X + (area.Width-drawWidth)/2
	originY := area.Y + (area.Height-drawHeight)/2
	return squareGridGeometry{
		OriginX:  originX,
		OriginY:  originY,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		DrawRect: rl.NewRectangle(originX, originY, drawWidth, drawHeight),
	}, true
}

func (g squareGridGeometry) CellRect(idx int) rl.Rectangle {
	col := idx % g.Cols
	row := idx / g.Cols
	return rl.NewRectangle(g.OriginX+float32(col)*g.CellSize, g.OriginY+float32(row)*g.CellSize, g.CellSize, g.CellSize)
}

// CellAt maps a point to a row-major cell index.
func (g squareGridGeometry) CellAt(p rl.Vector2) (int, bool) {
	if g.Cols <= 0 || g.CellSize <= 0 {
		return 0, false
	}
	if p.X < g.OriginX || p.Y < g.OriginY {
		return 0, false
	}
	col := int((p.X - g.OriginX) / g.CellSize)
	row := int((p.Y - g.OriginY) / g.CellSize)
	if col >= g.Cols || row >= g.Rows {
		return 0, false
	}
	return row*g.Cols + col, true
}

type screenLayout struct {
	Header  rl.Rectangle
	Body    rl.Rectangle
	Footer  rl.Rectangle
	Command rl.Rectangle
}

func computeScreenLayout(width, height int32) screenLayout {
	w := float32(width)
	h := float32(height)
	margin := spaceL
	header := rl.NewRectangle(margin, margin, w-margin*2, 72)
	footer := rl.NewRectangle(margin, h-margin-32, w-margin*2, 32)
	body := rl.NewRectangle(margin, header.Y+header.Height+spaceS, w-margin*2, footer.Y-spaceS-(header.Y+header.Height+spaceS))
	command := rl.NewRectangle(margin, footer.Y-60, w-margin*2, 48)
	return screenLayout{Header: header, Body: body, Footer: footer, Command: command}
}

// stackRects lays n rows of the given height down from (x, y).
func stackRects(x, y, width, height, gap float32, n int) []rl.Rectangle {
	rects := make([]rl.Rectangle, n)
	for i := range rects {
		rects[i] = rl.NewRectangle(x, y+float32(i)*(height+gap), width, height)
	}
	return rects
}

// rowRects lays n equal-width boxes across width starting at (x, y).
func rowRects(x, y, width, height, gap float32, n int) []rl.Rectangle {
	if n <= 0 {
		return nil
	}
	w := (width - gap*float32(n-1)) / float32(n)
	rects := make([]rl.Rectangle, n)
	for i := range rects {
		rects[i] = rl.NewRectangle(x+float32(i)*(w+gap), y, w, height)
	}
	return rects
}

func hitIndex(rects []rl.Rectangle, p rl.Vector2) (int, bool) {
	for i, r := range rects {
		if rl.CheckCollisionPointRec(p, r) {
			return i, true
		}
	}
	return 0, false
}
