package gamemath

// PlayerHitboxOrigin places the player's hitbox over the visible body,
// which starts two frame widths into the scaled sprite.
func PlayerHitboxOrigin(x, y float64, frameWidth, widthScale int) (hx, hy float64) {
	return x + float64(frameWidth*widthScale), y
}

// SkeletonHitboxOrigin shifts the hitbox when the sprite is mirrored.
func SkeletonHitboxOrigin(x, y float64, direction int, facingLeftOffset float64) (hx, hy float64) {
	if direction < 0 {
		return x + facingLeftOffset, y
	}
	return x, y
}

// HitboxSize is fixed at creation for both actors.
func HitboxSize(frameWidth, frameHeight, scale, widthScale int, heightTrim float64) (w, h float64) {
	return float64(frameWidth * widthScale), float64(frameHeight*scale) - heightTrim
}
