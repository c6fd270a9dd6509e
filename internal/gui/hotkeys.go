package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
)

func ShiftPressed() bool {
	return shiftDown()
}

func ShiftKeyPressed(key int32) bool {
	if ShiftPressed() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Shift then key, or key then Shift.
	if rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift)) {
		return true
	}
	return false
}

// HotkeysEnabled is false while a text field owns the keyboard.
func HotkeysEnabled(uiState *gameUI) bool {
	if uiState == nil {
		return true
	}
	if uiState.commandOpen || uiState.alert != "" {
		return false
	}
	s := uiState.session
	switch s.Screen() {
	case app.ScreenGrape:
		return s.Grape() == nil || s.Grape().State() != game.GrapeEntry
	case app.ScreenTicketing:
		return s.Ticketing() == nil || s.Ticketing().Step() != game.StepName
	case app.ScreenCalendar:
		return !uiState.cal.formOpen || !uiState.cal.field.isText()
	}
	return true
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}
