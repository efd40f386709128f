package segment

// Position addresses one of the four character cells, left to right.
type Position byte

const (
	First Position = iota
	Second
	Third
	Fourth
)

// Positions is the number of character cells on the display.
const Positions = 4

// BufferLen is the number of 16-bit slots in a display buffer: one per
// character cell plus the shared colon slot between the second and third.
const BufferLen = 5

// colon lives in the shared slot, decoupled from any cell's segments
const ColonSlot = 2
const COLON_BIT = 1

// ColonMask is the colon bit within its slot.
const ColonMask uint16 = 1 << COLON_BIT

// SlotFor maps a cell to its buffer slot, skipping over the colon slot for
// the two right-hand cells.
func SlotFor(pos Position) int {
	if pos > Second {
		return int(pos) + 1
	}
	return int(pos)
}
