package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(40)
	ButtonHeight     = float32(52)
	AccentStripWidth = float32(4)
	CellGap          = float32(2)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
	PanelAlert
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonFocused
	ButtonDisabled
)

type ListItemState int

const (
	ListItemNormal ListItemState = iota
	ListItemSelected
	ListItemFocused
	ListItemDisabled
	// ListItemHighlighted marks the player's own row in a ranking.
	ListItemHighlighted
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentGrape, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	case PanelAlert:
		fill = PanelRaised
		stroke = Danger
		strokeWidth = BorderWidthFocus
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	inner := rl.NewRectangle(rect.X+1, rect.Y+1, rect.Width-2, rect.Height-2)
	if inner.Width > 4 && inner.Height > 4 {
		rl.DrawRectangleRoundedLinesEx(inner, CornerRadius, CornerSegments, 1.0, rl.Fade(Divider, 0.65))
	}
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	fill := Panel
	stroke := Border
	label := TextPrimary
	strokeWidth := BorderWidth

	switch state {
	case ButtonSelected, ButtonFocused:
		fill = PanelRaised
		stroke = AccentPink
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		label = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	if text == "" {
		return
	}
	size := Type.Body
	labelW := MeasureText(text, size)
	textX := int32(rect.X + (rect.Width-float32(labelW))/2)
	textY := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	DrawText(text, textX, textY, size, label)
}

func DrawListItem(rect rl.Rectangle, state ListItemState, leftText, rightText string) {
	fill := rl.Fade(PanelRaised, 0.45)
	stroke := rl.Fade(Border, 0.9)
	left := TextPrimary
	right := TextSecondary
	strokeWidth := BorderWidth
	strip := rl.Color{}
	drawStrip := false

	switch state {
	case ListItemSelected, ListItemFocused:
		fill = PanelRaised
		stroke = AccentPink
		strokeWidth = BorderWidthFocus
		strip = AccentPink
		drawStrip = true
		right = AccentPink
	case ListItemHighlighted:
		fill = rl.Fade(Gold, 0.18)
		stroke = Gold
		strokeWidth = BorderWidthFocus
		strip = Gold
		drawStrip = true
		left = Gold
		right = Gold
	case ListItemDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		left = DisabledText
		right = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	if drawStrip {
		stripRect := rl.NewRectangle(rect.X+1, rect.Y+2, AccentStripWidth, rect.Height-4)
		if stripRect.Height > 0 {
			rl.DrawRectangleRec(stripRect, strip)
		}
	}

	rightW := int32(0)
	if rightText != "" {
		rightW = MeasureText(rightText, Type.Body)
		rightX := int32(rect.X + rect.Width - PaddingM - float32(rightW))
		DrawText(rightText, rightX, int32(rect.Y+10), Type.Body, right)
	}
	if leftText != "" {
		room := int32(rect.Width-2*PaddingM-PaddingS) - rightW
		DrawText(FitText(leftText, Type.Body, room), int32(rect.X+PaddingM), int32(rect.Y+10), Type.Body, left)
	}
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Header, TextPrimary)
	w := MeasureText(text, Type.Header)
	lineW := int32(float32(w) * 0.6)
	if lineW < 44 {
		lineW = 44
	}
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+lineW), float32(y+Type.Header+6), 2.0, AccentGrape)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Small, TextMuted)
}

// DrawTitle centres the large app title in rect.
func DrawTitle(text string, rect rl.Rectangle, y int32) {
	w := MeasureText(text, Type.Title)
	x := int32(rect.X + (rect.Width-float32(w))/2)
	DrawText(text, x, int32(rect.Y)+y, Type.Title, AccentPink)
}

// DrawInput draws a single-line text field with a caret while focused.
func DrawInput(rect rl.Rectangle, text, placeholder string, focused bool) {
	fill := rl.Fade(Panel, 0.9)
	stroke := Border
	strokeWidth := BorderWidth
	if focused {
		fill = PanelRaised
		stroke = AccentGrape
		strokeWidth = BorderWidthFocus
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	textY := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	x := int32(rect.X + PaddingS)
	if text == "" && !focused {
		DrawText(placeholder, x, textY, Type.Body, TextMuted)
		return
	}
	DrawText(text, x, textY, Type.Body, TextPrimary)
	if focused {
		caretX := float32(x + MeasureText(text, Type.Body) + 2)
		drawLine(caretX, float32(textY), caretX, float32(textY+Type.Body), 2, AccentPink)
	}
}

// DrawCell fills one grid square, leaving CellGap around it.
func DrawCell(rect rl.Rectangle, fill rl.Color, highlighted bool) {
	inner := rl.NewRectangle(rect.X+CellGap/2, rect.Y+CellGap/2, rect.Width-CellGap, rect.Height-CellGap)
	if inner.Width <= 0 || inner.Height <= 0 {
		inner = rect
	}
	rl.DrawRectangleRounded(inner, 0.2, 4, fill)
	if highlighted {
		rl.DrawRectangleRoundedLinesEx(inner, 0.2, 4, BorderWidthFocus, Gold)
	}
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
