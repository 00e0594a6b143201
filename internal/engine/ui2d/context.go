package ui2d

import "fmt"

// Context ties the renderer to pointer input and tracks which widget the
// pointer is over.
type Context struct {
	renderer *Renderer
	input    *InputState

	hotWidget    string
	activeWidget string
}

// NewContext creates the renderer and an empty input state.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Context{
		renderer: r,
		input:    &InputState{},
	}, nil
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// Renderer returns the underlying renderer.
func (c *Context) Renderer() *Renderer {
	return c.renderer
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.renderer.Resize(width, height)
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Hot returns the id of the widget under the pointer this frame.
func (c *Context) Hot() string {
	return c.hotWidget
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.hotWidget = ""
	c.input.Update()
	c.renderer.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
	c.input.EndFrame()
}

// Interact reports whether the pointer hovers rect and whether it was
// clicked this frame. A click is consumed so overlapping widgets see it once.
func (c *Context) Interact(id string, rect Rect) (hovered, clicked bool) {
	hovered = rect.Contains(c.input.MouseX, c.input.MouseY)
	if hovered {
		c.hotWidget = id
		if c.input.MouseLeftPressed || c.input.MouseLeftClicked {
			c.activeWidget = id
			clicked = true
			c.input.MouseLeftPressed = false
			c.input.MouseLeftClicked = false
		}
	}
	if c.activeWidget == id && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}
	return hovered, clicked
}

// Text draws text anchored at (x, y) according to align and returns the
// rectangle it occupies.
func (c *Context) Text(x, y float32, text string, scale float32, color Color, align Align) Rect {
	w, h := c.renderer.MeasureText(text, scale)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	c.renderer.DrawText(x, y, text, scale, color)
	return Rect{x, y, w, h}
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

// Align is horizontal text alignment relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
}
