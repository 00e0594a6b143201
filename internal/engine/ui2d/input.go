package ui2d

// InputState holds the pointer state the UI reacts to.
type InputState struct {
	MouseX float32
	MouseY float32

	MouseLeftDown bool

	// Edges, valid between Update and EndFrame.
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// MouseLeftClicked latches a button-down event so a press and release
	// within the same frame still registers.
	MouseLeftClicked bool

	prevMouseLeft bool
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft
	i.prevMouseLeft = i.MouseLeftDown
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.MouseLeftClicked = false
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(x, y, w, h float32) bool {
	return i.MouseX >= x && i.MouseX < x+w &&
		i.MouseY >= y && i.MouseY < y+h
}
