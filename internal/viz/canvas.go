package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is Width x Height cells of braille dots, giving a drawing surface
// of (Width*2) x (Height*4) sub-pixels. A cell may instead hold a marker
// rune, which hides its dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	marks         map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		marks:  make(map[[2]int]rune),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
	return c
}

func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = x / 2
	row = y / 4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set turns on the sub-pixel (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Mark places r in the cell containing sub-pixel (x, y).
func (c *Canvas) Mark(x, y int, r rune) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.marks[[2]int{row, col}] = r
}

func (c *Canvas) MarkAt(x, y int) (rune, bool) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return 0, false
	}
	r, ok := c.marks[[2]int{row, col}]
	return r, ok
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
	c.marks = make(map[[2]int]rune)
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Render writes the canvas row by row, passing marker cells through
// style.
func (c *Canvas) Render(style func(r rune) string) string {
	var b strings.Builder
	for row, line := range c.Grid {
		for col, r := range line {
			if m, ok := c.marks[[2]int{row, col}]; ok {
				if style != nil {
					b.WriteString(style(m))
				} else {
					b.WriteRune(m)
				}
				continue
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) String() string {
	return c.Render(nil)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
