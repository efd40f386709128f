package backpack

import (
	"log"
	"strings"

	"github.com/pkg/errors"

	"dscheirer.com/sevenseg/segment"
)

// Flusher receives the frame buffer whenever it changes. The transport to
// the display controller implements this; none ships with this package.
type Flusher interface {
	Flush(slots []uint16) error
}

// Display owns the frame buffer for one 4-digit backpack. The Write* and
// Set* calls mutate the buffer in memory; nothing reaches the Flusher until
// the buffer actually changes and a refresh runs.
type Display struct {
	display        [segment.BufferLen]uint16
	currentDisplay [segment.BufferLen]uint16
	flusher        Flusher
	refresh        bool
	dump           bool
}

// New returns a display with a clear buffer and refresh on. A nil flusher
// is fine for simulated use.
func New(flusher Flusher) *Display {
	return &Display{
		flusher: flusher,
		refresh: true,
	}
}

// DebugDump renders the buffer as ascii art to the log on every refresh.
func (this *Display) DebugDump(on bool) {
	this.dump = on
}

// Buffer is the live slot buffer, for callers that drive the segment
// operations directly. Call Refresh after mutating it.
func (this *Display) Buffer() []uint16 {
	return this.display[:]
}

func (this *Display) ClearDisplay() error {
	this.display = [segment.BufferLen]uint16{}
	return this.refreshDisplay()
}

// RefreshOn enables or disables flushing; turning it back on flushes any
// pending changes. Use it to batch several updates into one flush.
func (this *Display) RefreshOn(on bool) error {
	this.refresh = on
	return this.refreshDisplay()
}

// Refresh flushes the buffer if it changed since the last flush.
func (this *Display) Refresh() error {
	return this.refreshDisplay()
}

func (this *Display) WriteDigit(pos segment.Position, value byte) error {
	if err := segment.WriteDigit(this.display[:], pos, value); err != nil {
		return err
	}
	return this.refreshDisplay()
}

func (this *Display) WriteChar(pos segment.Position, char byte) error {
	if err := segment.WriteChar(this.display[:], pos, char); err != nil {
		return err
	}
	return this.refreshDisplay()
}

func (this *Display) SetDot(pos segment.Position, on bool) error {
	segment.SetDot(this.display[:], pos, on)
	return this.refreshDisplay()
}

func (this *Display) SetColon(on bool) error {
	segment.SetColon(this.display[:], on)
	return this.refreshDisplay()
}

// SegmentOn turns a single segment at a cell on or off.
func (this *Display) SegmentOn(pos segment.Position, seg byte, on bool) error {
	slot := segment.SlotFor(pos)
	if on {
		this.display[slot] |= 1 << seg
	} else {
		this.display[slot] &= ^(uint16(1) << seg)
	}
	return this.refreshDisplay()
}

func (this *Display) FormatFloat(start segment.Position, value float64, fractionalDigits int, base int) error {
	if err := segment.FormatFloat(this.display[:], start, value, fractionalDigits, base); err != nil {
		return err
	}
	return this.refreshDisplay()
}

func (this *Display) refreshDisplay() error {
	if !this.refresh {
		return nil
	}
	// refreshing on the same thing?
	if this.currentDisplay == this.display {
		return nil
	}
	this.currentDisplay = this.display

	// for debugging, dump out what we think we're putting on the display
	if this.dump {
		this.dumpDisplay()
	}

	if this.flusher == nil {
		return nil
	}
	slots := this.display
	return this.flusher.Flush(slots[:])
}

// glyph for one printed character; space and '.' render as a blank cell
func getMask(char byte, dotOn bool) (uint16, error) {
	var mask uint16
	if char != ' ' && char != '.' {
		var err error
		mask, err = segment.CharMask(char)
		if err != nil {
			return 0, err
		}
	}
	if dotOn {
		mask |= segment.DotMask
	}
	return mask, nil
}

// Print renders msg right-justified. A '.' folds onto the cell before it,
// a ':' routes to PrintColon.
func (this *Display) Print(msg string) error {
	if strings.Contains(msg, ":") {
		return this.PrintColon(msg)
	}
	var display [segment.BufferLen]uint16
	pos := int(segment.Fourth)
	i := len(msg) - 1
	for ; i >= 0 && pos >= 0; i-- {
		target := msg[i]
		dotOn := false
		if target == '.' {
			dotOn = true
			// the dot rides on the character before it; two dots in a
			// row leave a blank cell under the dot
			i--
			if i >= 0 && msg[i] != '.' {
				target = msg[i]
			} else {
				target = ' '
				if i < 0 {
					i = 0
				}
			}
		}
		mask, err := getMask(target, dotOn)
		if err != nil {
			return err
		}
		segment.WriteMask(display[:], segment.Position(pos), mask)
		pos--
	}
	if i != -1 {
		return errors.New("Too many characters: " + msg)
	}
	this.display = display
	return this.refreshDisplay()
}

// PrintFromPosition renders msg left-justified starting at the given cell.
func (this *Display) PrintFromPosition(msg string, pos segment.Position) error {
	if strings.Contains(msg, ":") {
		return this.PrintColon(msg)
	}
	var display [segment.BufferLen]uint16
	displayPos := int(pos)
	i := 0
	for ; i < len(msg) && displayPos < segment.Positions; i++ {
		dotOn := false
		if i < len(msg)-1 && msg[i+1] == '.' {
			dotOn = true
		}
		mask, err := getMask(msg[i], dotOn)
		if err != nil {
			return err
		}
		segment.WriteMask(display[:], segment.Position(displayPos), mask)
		displayPos++
		if dotOn {
			i++
		}
	}
	if i != len(msg) {
		return errors.New("Too many characters: " + msg)
	}
	this.display = display
	return this.refreshDisplay()
}

// PrintColon renders msg around its ':' as the centerline, the way a clock
// reads, and turns the colon on.
func (this *Display) PrintColon(msg string) error {
	parts := strings.Split(msg, ":")
	if len(parts) != 2 {
		return errors.New("Expected one colon: " + msg)
	}
	var display [segment.BufferLen]uint16

	// left half walks backwards from the second cell
	displayPos := int(segment.Second)
	i := len(parts[0]) - 1
	for ; i >= 0 && displayPos >= 0; i-- {
		dotOn := false
		if parts[0][i] == '.' && i > 0 {
			dotOn = true
			i--
		}
		mask, err := getMask(parts[0][i], dotOn)
		if err != nil {
			return err
		}
		segment.WriteMask(display[:], segment.Position(displayPos), mask)
		displayPos--
	}
	if i != -1 {
		return errors.New("Too many characters: " + msg)
	}

	// right half walks forwards from the third cell
	displayPos = int(segment.Third)
	i = 0
	for ; i < len(parts[1]) && displayPos < segment.Positions; i++ {
		dotOn := false
		if i < len(parts[1])-1 && parts[1][i+1] == '.' {
			dotOn = true
		}
		mask, err := getMask(parts[1][i], dotOn)
		if err != nil {
			return err
		}
		segment.WriteMask(display[:], segment.Position(displayPos), mask)
		displayPos++
		if dotOn {
			i++
		}
	}
	if i != len(parts[1]) {
		return errors.New("Too many characters: " + msg)
	}

	segment.SetColon(display[:], true)
	this.display = display
	return this.refreshDisplay()
}

func (this *Display) dumpDisplay() {
	//  -     -      -     -
	// | |   | |  . | |   | |
	//  -     -      -     -
	// | |   | |  . | |   | |
	//  -  .  -  .   -  .  -  .

	cell := func(pos int) uint16 {
		return this.display[segment.SlotFor(segment.Position(pos))]
	}
	colon := this.display[segment.ColonSlot]&segment.ColonMask != 0

	// go one row at a time
	line := "\n"
	for i := 0; i < segment.Positions; i++ {
		if i == 2 {
			line += " "
		}
		if cell(i)&(1<<segment.LED_TOP) != 0 {
			line += "  -   "
		} else {
			line += "      "
		}
	}
	line += "\n"
	for i := 0; i < segment.Positions; i++ {
		if i == 2 {
			if colon {
				line += "."
			} else {
				line += " "
			}
		}
		if cell(i)&(1<<segment.LED_TOPL) != 0 {
			line += " |"
		} else {
			line += "  "
		}
		if cell(i)&(1<<segment.LED_TOPR) != 0 {
			line += " |  "
		} else {
			line += "    "
		}
	}
	line += "\n"
	for i := 0; i < segment.Positions; i++ {
		if i == 2 {
			line += " "
		}
		if cell(i)&(1<<segment.LED_MID) != 0 {
			line += "  -   "
		} else {
			line += "      "
		}
	}
	line += "\n"
	for i := 0; i < segment.Positions; i++ {
		if i == 2 {
			if colon {
				line += "."
			} else {
				line += " "
			}
		}
		if cell(i)&(1<<segment.LED_BOTL) != 0 {
			line += " |"
		} else {
			line += "  "
		}
		if cell(i)&(1<<segment.LED_BOTR) != 0 {
			line += " |  "
		} else {
			line += "    "
		}
	}
	line += "\n"
	for i := 0; i < segment.Positions; i++ {
		if i == 2 {
			line += " "
		}
		if cell(i)&(1<<segment.LED_BOT) != 0 {
			line += "  -  "
		} else {
			line += "     "
		}
		if cell(i)&segment.DotMask != 0 {
			line += "."
		} else {
			line += " "
		}
	}
	line += "\n"
	log.Println(line)
}
