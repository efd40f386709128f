package segment

// Buffer operations mutate a caller-owned slice of BufferLen slots. Nothing
// here touches hardware; flushing the buffer is the driver's job.

// WriteDigit stores the glyph for a hex digit value (0x00 to 0x0F) at the
// given cell. The cell's decimal point is left as it was.
func WriteDigit(buf []uint16, pos Position, value byte) error {
	mask, err := DigitMask(value)
	if err != nil {
		return err
	}
	writeMask(buf, pos, mask)
	return nil
}

// WriteChar stores the glyph for an ascii character at the given cell,
// leaving the buffer unmodified if the character has no glyph.
func WriteChar(buf []uint16, pos Position, char byte) error {
	mask, err := CharMask(char)
	if err != nil {
		return err
	}
	writeMask(buf, pos, mask)
	return nil
}

// SetDot turns the decimal point at the given cell on or off without
// touching its segments.
func SetDot(buf []uint16, pos Position, on bool) {
	slot := SlotFor(pos)
	if on {
		buf[slot] |= DotMask
	} else {
		buf[slot] &= ^DotMask
	}
}

// SetColon turns the colon on or off.
func SetColon(buf []uint16, on bool) {
	if on {
		buf[ColonSlot] |= ColonMask
	} else {
		buf[ColonSlot] &= ^ColonMask
	}
}

// WriteMask stores a raw 16-bit slot value, glyph and dot bit together, at
// the given cell.
func WriteMask(buf []uint16, pos Position, mask uint16) {
	buf[SlotFor(pos)] = mask
}

func writeMask(buf []uint16, pos Position, mask uint16) {
	slot := SlotFor(pos)
	buf[slot] = (buf[slot] & DotMask) | (mask & ^DotMask)
}
