package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows using the upper half
// block, with the topmost image row in the first terminal row.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := fb.Height - 1 - (row-area.Min.Y)*2
		bot := top - 1
		if top < 0 {
			break
		}

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.At(x, top)),
					Bg: rgbaToColor(fb.At(x, bot)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor maps transparent pixels to the terminal default.
func rgbaToColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
