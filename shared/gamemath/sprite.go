package gamemath

// SourceRect selects a frame on a horizontal sprite sheet. direction is -1 or
// 1; a negative width asks the renderer to sample [X, X+|W|) mirrored.
func SourceRect(frameWidth, frame, direction, sheetHeight int) Rect {
	return Rect{
		X: float64(frameWidth * frame),
		Y: 0,
		W: float64(frameWidth * direction),
		H: float64(sheetHeight),
	}
}

// DestRect is where a sprite lands on screen.
func DestRect(x, y float64, width, height, scale int) Rect {
	return Rect{
		X: x,
		Y: y,
		W: float64(width * scale),
		H: float64(height * scale),
	}
}
