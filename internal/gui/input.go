package gui

import (
	"unicode"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxNameRunes = 24

// captureTextInput appends typed characters to target and handles backspace.
func captureTextInput(target *string, maxRunes int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		*target = appendRune(*target, rune(ch), maxRunes)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		*target = dropLastRune(*target)
	}
}

func appendRune(s string, r rune, maxRunes int) string {
	if !unicode.IsPrint(r) || utf8.RuneCountInString(s) >= maxRunes {
		return s
	}
	return s + string(r)
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func mouseClicked() (rl.Vector2, bool) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return rl.Vector2{}, false
	}
	return rl.GetMousePosition(), true
}

// alertDismissed reports any key press or a left click this frame.
func alertDismissed() bool {
	return rl.GetKeyPressed() != 0 || rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

func anyKeyPressed(keys ...int32) bool {
	for _, k := range keys {
		if rl.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// digitPressed reports the first of keys 1..n pressed this frame as a zero
// based index.
func digitPressed(n int) (int, bool) {
	for i := 0; i < n && i < 9; i++ {
		if rl.IsKeyPressed(rl.KeyOne+int32(i)) || rl.IsKeyPressed(rl.KeyKp1+int32(i)) {
			return i, true
		}
	}
	return 0, false
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
