package theme

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	textSpacing = float32(1)
	ellipsis    = "…"
)

var textFont rl.Font

// UseFont makes every widget draw with f. The zero Font falls back to the
// raylib default, which has no Hangul glyphs.
func UseFont(f rl.Font) {
	textFont = f
}

func DrawText(text string, x, y, fontSize int32, clr rl.Color) {
	if textFont.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(textFont, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), textSpacing, clr)
}

func MeasureText(text string, fontSize int32) int32 {
	if textFont.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(textFont, text, float32(fontSize), textSpacing).X)))
}

// FitText shortens text on a rune boundary, ending it with an ellipsis, until
// it is at most maxWidth pixels wide. Nicknames and event names are free
// text, so list rows and inputs pass them through here.
func FitText(text string, fontSize, maxWidth int32) string {
	return fitText(text, maxWidth, func(s string) int32 { return MeasureText(s, fontSize) })
}

func fitText(text string, maxWidth int32, measure func(string) int32) string {
	if maxWidth <= 0 || measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		if s := string(runes[:n]) + ellipsis; measure(s) <= maxWidth {
			return s
		}
	}
	return ellipsis
}
