package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Grape palette for the desktop client.
var (
	BG            = rl.NewColor(0x1A, 0x10, 0x24, 255) // #1A1024
	Panel         = rl.NewColor(0x24, 0x16, 0x3A, 255) // #24163A
	PanelRaised   = rl.NewColor(0x2E, 0x1D, 0x4A, 255) // #2E1D4A
	Border        = rl.NewColor(0x4A, 0x34, 0x68, 255) // #4A3468
	Divider       = rl.NewColor(0x3A, 0x28, 0x56, 255) // #3A2856
	TextPrimary   = rl.NewColor(0xF2, 0xEA, 0xFB, 255) // #F2EAFB
	TextSecondary = rl.NewColor(0xC3, 0xB3, 0xD9, 255) // #C3B3D9
	TextMuted     = rl.NewColor(0x8C, 0x7B, 0xA6, 255) // #8C7BA6
	AccentGrape   = rl.NewColor(0x9B, 0x59, 0xB6, 255) // #9B59B6
	AccentPink    = rl.NewColor(0xE8, 0x43, 0x93, 255) // #E84393
	Gold          = rl.NewColor(0xF5, 0xC5, 0x42, 255) // #F5C542
	Success       = rl.NewColor(0x2E, 0xCC, 0x71, 255) // #2ECC71
	Danger        = rl.NewColor(0xE7, 0x4C, 0x3C, 255) // #E74C3C
	DisabledPanel = rl.NewColor(0x1E, 0x15, 0x2A, 255)
	DisabledText  = TextMuted

	CellIdle   = rl.NewColor(0xED, 0xE4, 0xF5, 255)
	CellTarget = AccentGrape
	CellFound  = rl.NewColor(0x5B, 0x2C, 0x6F, 255) // #5B2C6F
	SeatOpen   = AccentGrape
	SeatSold   = rl.NewColor(0x55, 0x4D, 0x5E, 255)
	SeatPicked = AccentPink
)
