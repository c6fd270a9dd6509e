package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
}

type typographyState struct {
	base       rl.Font
	ownsBase   bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Title:  uitheme.Type.Title,
		Header: uitheme.Type.Header,
		Body:   uitheme.Type.Body,
		Small:  uitheme.Type.Small,
	}
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
)

// fontCodepoints covers ASCII, the glyphs the screens draw and every Hangul
// syllable so bank names and Korean nicknames render.
func fontCodepoints() []rune {
	runes := make([]rune, 0, 96+11172+16)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, '•', '◀', '▶', '…', '✓')
	for r := rune(0xAC00); r <= 0xD7A3; r++ {
		runes = append(runes, r)
	}
	return runes
}

func initTypography() {
	uiType.base = rl.GetFontDefault()

	fontCandidates := []string{
		filepath.Join("assets", "fonts", "NotoSansKR-Regular.ttf"),
		filepath.Join("assets", "fonts", "Pretendard-Regular.ttf"),
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
		"/System/Library/Fonts/AppleSDGothicNeo.ttc",
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, 32); ok {
		uiType.base = f
		uiType.ownsBase = true
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	uitheme.UseFont(uiType.base)
}

func shutdownTypography() {
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uitheme.UseFont(rl.Font{})
	uiType = typographyState{lineFactor: uitheme.Type.LineFactor}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	codepoints := fontCodepoints()
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, codepoints, int32(len(codepoints)))
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	uitheme.DrawText(text, x, y, fontSize, clr)
}

func measureText(text string, fontSize int32) int32 {
	return uitheme.MeasureText(text, fontSize)
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}
