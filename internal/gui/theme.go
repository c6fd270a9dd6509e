package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	AccentSoft    rl.Color
	Gold          rl.Color
	Success       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
	spaceL  = uitheme.PaddingL
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	PanelRaised:   uitheme.PanelRaised,
	Border:        uitheme.Border,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	Accent:        uitheme.AccentPink,
	AccentSoft:    rl.Fade(uitheme.AccentGrape, 0.8),
	Gold:          uitheme.Gold,
	Success:       uitheme.Success,
	Danger:        uitheme.Danger,
}

type PanelVariant = uitheme.PanelVariant

const (
	panelVariantDefault = uitheme.PanelStandard
	panelVariantRaised  = uitheme.PanelLifted
	panelVariantAlert   = uitheme.PanelAlert
)

type ButtonState = uitheme.ButtonState

const (
	buttonStateNormal   = uitheme.ButtonNormal
	buttonStateSelected = uitheme.ButtonSelected
	buttonStateDisabled = uitheme.ButtonDisabled
)

type ListItemState = uitheme.ListItemState

const (
	listStateNormal      = uitheme.ListItemNormal
	listStateSelected    = uitheme.ListItemSelected
	listStateHighlighted = uitheme.ListItemHighlighted
)

// DrawPanel draws a themed panel. A non-empty title gets a header and a
// divider at the panel top.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := panelVariantDefault
	if focused {
		variant = panelVariantRaised
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
		dividerY := rect.Y + spaceS + float32(typeScale.Header) + 12
		DrawDivider(rect.X+spaceM, dividerY, rect.X+rect.Width-spaceM, dividerY)
	}
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	uitheme.DrawButton(rect, state, text)
}

func buttonState(selected bool) ButtonState {
	if selected {
		return buttonStateSelected
	}
	return buttonStateNormal
}

func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	uitheme.DrawListItem(rect, state, leftText, rightText)
}

func DrawInputField(rect rl.Rectangle, text, placeholder string, focused bool) {
	uitheme.DrawInput(rect, text, placeholder, focused)
}

func DrawHeader(text string, x, y int32) {
	uitheme.DrawHeader(text, x, y)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	uitheme.DrawDivider(x1, y1, x2, y2)
}

func DrawHintText(text string, x, y int32) {
	uitheme.DrawHintText(text, x, y)
}

func DrawLabelValue(label, value string, x, y int32, valueColor rl.Color) {
	drawText(label, x, y, typeScale.Body, AppTheme.TextSecondary)
	drawText(value, x+160, y, typeScale.Body, valueColor)
}

func drawDialogPanel(rect rl.Rectangle) {
	uitheme.DrawPanel(rect, panelVariantAlert)
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := measureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	drawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}
