package mosaic

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tessella/tiling"
)

// Render draws m as box-drawing text, five text lines per tile row.
// Exterior sides are shaded solid, interior sides outlined, and small
// arrows mark each tile's rotation. Every line is prefixed with indent
// spaces. Intended for diagnostic display of samples and small sets.
// Complexity: O(W×H).
func Render(m Mosaic, indent int) string {
	var b strings.Builder
	pad := strings.Repeat(" ", indent)
	for y := 0; y < m.Height(); y++ {
		renderTopRow(&b, m, y, pad)
		renderFillRow(&b, m, y, pad, 0)
		renderMiddleRow(&b, m, y, pad)
		renderFillRow(&b, m, y, pad, 1)
		renderBottomRow(&b, m, y, pad)
	}

	return b.String()
}

// center pads s to width, extra space going to the right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func renderTopRow(b *strings.Builder, m Mosaic, y int, pad string) {
	b.WriteString(pad)
	for x := 0; x < m.Width(); x++ {
		rt := m.At(x, y)
		leftBorder := rt.Color(tiling.Left).IsBorder()
		topBorder := rt.Color(tiling.Top).IsBorder()
		rightBorder := rt.Color(tiling.Right).IsBorder()

		switch {
		case leftBorder:
			b.WriteString("▄")
		case topBorder:
			b.WriteString("▗")
		default:
			b.WriteString("┌")
		}
		run := "───"
		if topBorder {
			run = "▄▄▄"
		}
		b.WriteString(run)
		b.WriteString(center(rt.Color(tiling.Top).String(), 2))
		b.WriteString(run)
		switch {
		case rightBorder:
			b.WriteString("▄")
		case topBorder:
			b.WriteString("▖")
		default:
			b.WriteString("┐")
		}
	}
	b.WriteString("\n")
}

func renderFillRow(b *strings.Builder, m Mosaic, y int, pad string, row int) {
	b.WriteString(pad)
	for x := 0; x < m.Width(); x++ {
		rt := m.At(x, y)
		left, right := "│", "│"
		if rt.Color(tiling.Left).IsBorder() {
			left = "█"
		}
		if rt.Color(tiling.Right).IsBorder() {
			right = "█"
		}

		leftArrow, rightArrow := " ", " "
		switch {
		case row == 0 && rt.Rotation == tiling.Identity:
			leftArrow, rightArrow = "▴", "▴"
		case rt.Rotation == tiling.QuarterTurnLeft:
			leftArrow = "◂"
		case rt.Rotation == tiling.QuarterTurnRight:
			rightArrow = "▸"
		case row == 1 && rt.Rotation == tiling.HalfTurn:
			leftArrow, rightArrow = "▾", "▾"
		}

		b.WriteString(left)
		b.WriteString(" ")
		b.WriteString(leftArrow)
		b.WriteString("    ")
		b.WriteString(rightArrow)
		b.WriteString(" ")
		b.WriteString(right)
	}
	b.WriteString("\n")
}

func renderMiddleRow(b *strings.Builder, m Mosaic, y int, pad string) {
	b.WriteString(pad)
	for x := 0; x < m.Width(); x++ {
		rt := m.At(x, y)
		b.WriteString(rt.Color(tiling.Left).String())
		b.WriteString(center(strconv.Itoa(int(rt.Tile)), 8))
		b.WriteString(rt.Color(tiling.Right).String())
	}
	b.WriteString("\n")
}

func renderBottomRow(b *strings.Builder, m Mosaic, y int, pad string) {
	b.WriteString(pad)
	for x := 0; x < m.Width(); x++ {
		rt := m.At(x, y)
		leftBorder := rt.Color(tiling.Left).IsBorder()
		bottomBorder := rt.Color(tiling.Bottom).IsBorder()
		rightBorder := rt.Color(tiling.Right).IsBorder()

		switch {
		case leftBorder:
			b.WriteString("▀")
		case bottomBorder:
			b.WriteString("▝")
		default:
			b.WriteString("└")
		}
		run := "───"
		if bottomBorder {
			run = "▀▀▀"
		}
		b.WriteString(run)
		b.WriteString(center(rt.Color(tiling.Bottom).String(), 2))
		b.WriteString(run)
		switch {
		case rightBorder:
			b.WriteString("▀")
		case bottomBorder:
			b.WriteString("▘")
		default:
			b.WriteString("┘")
		}
	}
	b.WriteString("\n")
}
