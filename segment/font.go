package segment

import (
	"fmt"

	"github.com/pkg/errors"
)

// segment bit positions within a slot
const LED_TOP = 0
const LED_TOPR = 1
const LED_BOTR = 2
const LED_BOT = 3
const LED_BOTL = 4
const LED_TOPL = 5
const LED_MID = 6
const LED_DECIMAL = 7

// SegmentsMask covers the seven segment bits of a slot.
const SegmentsMask uint16 = 0x7F

// DotMask is the decimal point bit of a slot.
const DotMask uint16 = 1 << LED_DECIMAL

// MinusMask lights only the middle segment.
const MinusMask uint16 = 1 << LED_MID

// glyphs for the hex digits 0-F
var digitMasks = [16]uint16{
	0x3F, 0x06, 0x5B, 0x4F,
	0x66, 0x6D, 0x7D, 0x07,
	0x7F, 0x6F, 0x77, 0x7C,
	0x39, 0x5E, 0x79, 0x71,
}

// errors callers can retry with corrected input
var ErrBadDigit = errors.New("digit out of range")
var ErrBadChar = errors.New("character not displayable")

// DigitMask returns the glyph for a hex digit value 0x00 to 0x0F.
func DigitMask(value byte) (uint16, error) {
	if int(value) >= len(digitMasks) {
		return 0, errors.Wrap(ErrBadDigit, fmt.Sprintf("value %#x", value))
	}
	return digitMasks[value], nil
}

// CharMask returns the glyph for an ascii character. Hex digits (either
// case) map to the same glyph as their digit value, '-' to the minus sign;
// anything else is an error.
func CharMask(char byte) (uint16, error) {
	switch {
	case char >= '0' && char <= '9':
		return digitMasks[char-'0'], nil
	case char >= 'A' && char <= 'F':
		return digitMasks[10+char-'A'], nil
	case char >= 'a' && char <= 'f':
		return digitMasks[10+char-'a'], nil
	case char == '-':
		return MinusMask, nil
	}
	return 0, errors.Wrap(ErrBadChar, fmt.Sprintf("value '%c'", char))
}
