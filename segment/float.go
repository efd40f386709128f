package segment

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var ErrOverflow = errors.New("not enough cells for value")
var ErrInvalidBase = errors.New("base must be at least 2")
var ErrNegativeFractional = errors.New("negative fractional digit count")

// one pending cell update
type cellWrite struct {
	pos  Position
	mask uint16
	dot  bool
}

// FormatFloat renders value across the cells from start to the right edge
// of the display: a minus sign if negative, the whole digits, then
// fractionalDigits digits with the decimal point lit on the last whole
// digit. The magnitude is rounded half away from zero at fractionalDigits
// precision in the given base. The full layout is computed and checked
// before any slot is written, so on error the buffer is untouched. Cells to
// the right of the rendered value keep their previous contents.
func FormatFloat(buf []uint16, start Position, value float64, fractionalDigits int, base int) error {
	if base < 2 {
		return errors.Wrap(ErrInvalidBase, fmt.Sprintf("base %d", base))
	}
	if fractionalDigits < 0 {
		return errors.Wrap(ErrNegativeFractional, fmt.Sprintf("%d fractional digits", fractionalDigits))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Wrap(ErrOverflow, fmt.Sprintf("value %v", value))
	}

	avail := Positions - int(start)
	sign := 0
	mag := value
	if value < 0 {
		// the sign takes up one cell
		sign = 1
		mag = -mag
	}

	// scale the fraction into an integer, rounding half away from zero
	basef := float64(base)
	scaled := mag*math.Pow(basef, float64(fractionalDigits)) + 0.5

	// cells left over for digits; at least one whole digit must fit
	numeric := avail - sign
	if numeric < fractionalDigits+1 ||
		scaled >= math.Pow(basef, float64(numeric)) ||
		scaled >= float64(math.MaxInt64) {
		return errors.Wrap(ErrOverflow, fmt.Sprintf("%v in %d cells", value, avail))
	}
	number := uint64(scaled)

	digits := 1
	for n := number / uint64(base); n > 0; n /= uint64(base) {
		digits++
	}
	if digits < fractionalDigits+1 {
		// leading zero whole digit, e.g. 0.5
		digits = fractionalDigits + 1
	}

	// lay out every cell before touching the buffer
	writes := make([]cellWrite, 0, avail)
	pos := start
	if sign == 1 {
		writes = append(writes, cellWrite{pos: pos, mask: MinusMask})
		pos++
	}
	div := uint64(1)
	for i := 1; i < digits; i++ {
		div *= uint64(base)
	}
	for i := 0; i < digits; i++ {
		mask, err := DigitMask(byte(number / div % uint64(base)))
		if err != nil {
			// bases over 16 can produce digits with no glyph
			return err
		}
		dot := fractionalDigits > 0 && i == digits-fractionalDigits-1
		writes = append(writes, cellWrite{pos: pos, mask: mask, dot: dot})
		pos++
		div /= uint64(base)
	}

	for _, w := range writes {
		writeMask(buf, w.pos, w.mask)
		SetDot(buf, w.pos, w.dot)
	}
	return nil
}
