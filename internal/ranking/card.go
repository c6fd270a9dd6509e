package ranking

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	cardWidth     = 420
	cardHeader    = 84
	cardRowHeight = 26
	cardPadding   = 24
)

var (
	cardBackground = color.RGBA{R: 34, G: 18, B: 52, A: 255}
	cardPanel      = color.RGBA{R: 58, G: 32, B: 86, A: 255}
	cardAccent     = color.RGBA{R: 170, G: 110, B: 230, A: 255}
	cardText       = color.RGBA{R: 240, G: 232, B: 250, A: 255}
	cardMuted      = color.RGBA{R: 170, G: 150, B: 190, A: 255}
	cardHighlight  = color.RGBA{R: 255, G: 214, B: 102, A: 255}
)

// RenderCard draws one page of a leaderboard as an image.
func RenderCard(g Game, v View) image.Image {
	rows := max(len(v.Rows), 1)
	h := cardHeader + rows*cardRowHeight + cardPadding*2
	dc := gg.NewContext(cardWidth, h)

	dc.SetColor(cardBackground)
	dc.Clear()

	dc.SetColor(cardPanel)
	dc.DrawRoundedRectangle(12, 12, cardWidth-24, float64(h-24), 10)
	dc.Fill()

	// Grape cluster mark.
	dc.SetColor(cardAccent)
	for _, p := range [][2]float64{{0, 0}, {10, 0}, {5, 8}, {-5, 8}, {15, 8}, {5, 16}} {
		dc.DrawCircle(cardPadding+14+p[0], 30+p[1], 5)
	}
	dc.Fill()

	dc.SetColor(cardText)
	dc.DrawString(fmt.Sprintf("PODO RUSH  %s rankings", g.Title), cardPadding+44, 38)
	dc.SetColor(cardMuted)
	dc.DrawString(fmt.Sprintf("page %d of %d  (%d runs)", v.Page.Number, v.Page.TotalPages, v.Page.Total), cardPadding+44, 58)

	y := float64(cardHeader + cardPadding)
	if len(v.Rows) == 0 {
		dc.SetColor(cardMuted)
		dc.DrawString("No records yet.", cardPadding+8, y)
	}
	for _, row := range v.Rows {
		if row.Highlighted {
			dc.SetColor(color.RGBA{R: 255, G: 214, B: 102, A: 40})
			dc.DrawRectangle(cardPadding, y-17, cardWidth-cardPadding*2, cardRowHeight-2)
			dc.Fill()
			dc.SetColor(cardHighlight)
		} else {
			dc.SetColor(cardText)
		}
		dc.DrawString(fmt.Sprintf("%3d", row.Rank), cardPadding+8, y)
		dc.DrawString(row.Entry.Name, cardPadding+52, y)
		dc.DrawStringAnchored(FormatTime(row.Entry)+"s", cardWidth-cardPadding-8, y, 1, 0)
		y += cardRowHeight
	}
	return dc.Image()
}

// SaveCard renders the view and writes it to path as PNG.
func SaveCard(path string, g Game, v View) error {
	img := RenderCard(g, v)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save card: %w", err)
	}
	return nil
}
