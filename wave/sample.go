package wave

import "fmt"

// Sample maps a brightness to its darkness and whether the pixel is
// drawn at all. The darkness of an invisible pixel is zero and must not
// be used.
func Sample(brightness, whiteThreshold int) (darkness float64, visible bool, err error) {
	if brightness < 0 || brightness > 255 {
		return 0, false, fmt.Errorf("%w: brightness %d outside 0-255", ErrInvalidInput, brightness)
	}
	if whiteThreshold < 0 || whiteThreshold > 255 {
		return 0, false, fmt.Errorf("%w: white threshold %d outside 0-255", ErrInvalidInput, whiteThreshold)
	}
	if brightness >= whiteThreshold {
		return 0, false, nil
	}
	return 1 - float64(brightness)/255, true, nil
}
