package tinychart

// Display is the set of drawing primitives a panel driver exposes. Coordinates
// are in pixels with the origin at the top left corner of the panel.
type Display interface {
	FillRoundRect(x, y, w, h, r int, c Color)
	DrawRoundRect(x, y, w, h, r int, c Color)
	DrawLine(x0, y0, x1, y1 int, c Color)
	FillRect(x, y, w, h int, c Color)
	DrawRect(x, y, w, h int, c Color)
	FillCircle(x, y, r int, c Color)
	DrawCircle(x, y, r int, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color)

	DrawNumber(n, x, y int)
	DrawString(s string, x, y int)
	SetTextColor(fg, bg Color)
	SetTextSize(size int)
}
