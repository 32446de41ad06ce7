package main

import (
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const textBoxFontSize = 24

// CustomTextBox is the single-line ASCII input used by the menus.
type CustomTextBox struct {
	Rect        rl.Rectangle
	Text        string
	MaxLength   int
	CursorPos   int
	Focused     bool
	ShowCursor  bool
	CursorBlink time.Time
}

func NewCustomTextBox(x, y, w, h float32, maxLen int) *CustomTextBox {
	return &CustomTextBox{
		Rect:        rl.NewRectangle(x, y, w, h),
		MaxLength:   maxLen,
		CursorBlink: time.Now(),
		ShowCursor:  true,
	}
}

func (tb *CustomTextBox) textWidth(s string) float32 {
	return rl.MeasureTextEx(textFont, s, textBoxFontSize, 0).X
}

// cursorFromMouse places the cursor at the character boundary nearest to a
// click.
func (tb *CustomTextBox) cursorFromMouse(mouseX float32) {
	relativeX := mouseX - (tb.Rect.X + 5)
	tb.CursorPos = len(tb.Text)
	for i := 1; i <= len(tb.Text); i++ {
		if tb.textWidth(tb.Text[:i]) >= relativeX {
			tb.CursorPos = i - 1
			return
		}
	}
}

// Update handles focus and keyboard input. It reports whether Text changed.
func (tb *CustomTextBox) Update() bool {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mousePos := rl.GetMousePosition()
		tb.Focused = rl.CheckCollisionPointRec(mousePos, tb.Rect)
		if tb.Focused {
			tb.cursorFromMouse(mousePos.X)
		}
	}
	if !tb.Focused {
		tb.ShowCursor = false
		return false
	}

	changed := false
	for key := rl.GetCharPressed(); key != 0; key = rl.GetCharPressed() {
		if key < 32 || key > 126 || len(tb.Text) >= tb.MaxLength {
			continue
		}
		tb.Text = tb.Text[:tb.CursorPos] + string(rune(key)) + tb.Text[tb.CursorPos:]
		tb.CursorPos++
		changed = true
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) && tb.CursorPos > 0:
		tb.Text = tb.Text[:tb.CursorPos-1] + tb.Text[tb.CursorPos:]
		tb.CursorPos--
		changed = true
	case rl.IsKeyPressed(rl.KeyDelete) && tb.CursorPos < len(tb.Text):
		tb.Text = tb.Text[:tb.CursorPos] + tb.Text[tb.CursorPos+1:]
		changed = true
	case rl.IsKeyPressed(rl.KeyLeft) && tb.CursorPos > 0:
		tb.CursorPos--
	case rl.IsKeyPressed(rl.KeyRight) && tb.CursorPos < len(tb.Text):
		tb.CursorPos++
	case rl.IsKeyPressed(rl.KeyHome):
		tb.CursorPos = 0
	case rl.IsKeyPressed(rl.KeyEnd):
		tb.CursorPos = len(tb.Text)
	}

	if time.Since(tb.CursorBlink) > 500*time.Millisecond {
		tb.ShowCursor = !tb.ShowCursor
		tb.CursorBlink = time.Now()
	}
	return changed
}

func (tb *CustomTextBox) Draw() {
	rl.DrawRectangleRec(tb.Rect, rl.White)
	border := rl.Gray
	if tb.Focused {
		border = rl.DarkBlue
	}
	rl.DrawRectangleLinesEx(tb.Rect, 2, border)

	textX := tb.Rect.X + 5
	textY := tb.Rect.Y + tb.Rect.Height/2 - 10
	gui.Label(rl.NewRectangle(textX, textY, tb.Rect.Width-10, 20), tb.Text)

	if tb.Focused && tb.ShowCursor {
		cursorX := textX + tb.textWidth(tb.Text[:tb.CursorPos])
		rl.DrawLine(int32(cursorX), int32(textY), int32(cursorX), int32(textY+20), rl.Black)
	}
}
