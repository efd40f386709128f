package segment

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func glyph(t *testing.T, char byte) uint16 {
	mask, err := CharMask(char)
	assert.NilError(t, err)
	return mask
}

func TestFormatFloatNegativePi(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, -3.14, 2, 10))

	// "-3.14" fills the display exactly, dot riding on the 3
	want := []uint16{
		MinusMask,
		glyph(t, '3') | DotMask,
		0,
		glyph(t, '1'),
		glyph(t, '4'),
	}
	assert.DeepEqual(t, want, buf)
}

func TestFormatFloatFullWidth(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, 99.9, 2, 10))

	// "99.90"
	want := []uint16{
		glyph(t, '9'),
		glyph(t, '9') | DotMask,
		0,
		glyph(t, '9'),
		glyph(t, '0'),
	}
	assert.DeepEqual(t, want, buf)
}

func TestFormatFloatOverflow(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, WriteDigit(buf, First, 8))
	SetColon(buf, true)
	snapshot := append([]uint16{}, buf...)

	err := FormatFloat(buf, First, 12345.0, 0, 10)
	assert.Assert(t, errors.Cause(err) == ErrOverflow)
	assert.DeepEqual(t, snapshot, buf)

	// the sign cell counts too
	err = FormatFloat(buf, First, -99.9, 2, 10)
	assert.Assert(t, errors.Cause(err) == ErrOverflow)
	assert.DeepEqual(t, snapshot, buf)
}

func TestFormatFloatStartOffset(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, FormatFloat(buf, Second, 3.14, 2, 10))

	want := []uint16{
		0,
		glyph(t, '3') | DotMask,
		0,
		glyph(t, '1'),
		glyph(t, '4'),
	}
	assert.DeepEqual(t, want, buf)

	// one cell further right and it no longer fits
	snapshot := append([]uint16{}, buf...)
	err := FormatFloat(buf, Third, 3.14, 2, 10)
	assert.Assert(t, errors.Cause(err) == ErrOverflow)
	assert.DeepEqual(t, snapshot, buf)
}

func TestFormatFloatTrailingCellsKept(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, WriteDigit(buf, Fourth, 8))
	assert.NilError(t, FormatFloat(buf, First, 0.0, 0, 10))

	assert.Equal(t, glyph(t, '0'), buf[SlotFor(First)])
	assert.Equal(t, mustDigitMask(t, 8), buf[SlotFor(Fourth)])
}

func TestFormatFloatRounding(t *testing.T) {
	// half away from zero
	buf := freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, 2.5, 0, 10))
	assert.Equal(t, glyph(t, '3'), buf[SlotFor(First)])

	buf = freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, -0.5, 0, 10))
	assert.Equal(t, MinusMask, buf[SlotFor(First)])
	assert.Equal(t, glyph(t, '1'), buf[SlotFor(Second)])

	// fraction smaller than one whole digit keeps a leading zero
	buf = freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, 0.45, 1, 10))
	assert.Equal(t, glyph(t, '0')|DotMask, buf[SlotFor(First)])
	assert.Equal(t, glyph(t, '5'), buf[SlotFor(Second)])
}

func TestFormatFloatHex(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, 255.0, 0, 16))
	assert.Equal(t, glyph(t, 'F'), buf[SlotFor(First)])
	assert.Equal(t, glyph(t, 'F'), buf[SlotFor(Second)])
}

func TestFormatFloatBadArgs(t *testing.T) {
	buf := freshBuffer()
	snapshot := append([]uint16{}, buf...)

	err := FormatFloat(buf, First, 1.0, 0, 1)
	assert.Assert(t, errors.Cause(err) == ErrInvalidBase)

	err = FormatFloat(buf, First, 1.0, -1, 10)
	assert.Assert(t, errors.Cause(err) == ErrNegativeFractional)

	err = FormatFloat(buf, First, math.NaN(), 0, 10)
	assert.Assert(t, errors.Cause(err) == ErrOverflow)

	err = FormatFloat(buf, First, math.Inf(1), 0, 10)
	assert.Assert(t, errors.Cause(err) == ErrOverflow)

	// a base past 16 can round to digits with no glyph
	err = FormatFloat(buf, First, 99.0, 0, 100)
	assert.Assert(t, errors.Cause(err) == ErrBadDigit)

	assert.DeepEqual(t, snapshot, buf)
}

func TestFormatFloatIdempotent(t *testing.T) {
	buf := freshBuffer()
	assert.NilError(t, FormatFloat(buf, First, -3.14, 2, 10))
	snapshot := append([]uint16{}, buf...)
	assert.NilError(t, FormatFloat(buf, First, -3.14, 2, 10))
	assert.DeepEqual(t, snapshot, buf)
}
