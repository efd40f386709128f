// Package clockface renders wall-clock time on a 4-digit backpack as HH:MM
// with the colon as the separator.
package clockface

import (
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"dscheirer.com/sevenseg/backpack"
)

// redraw cadence while running; fine enough to catch the colon blink
const refreshInterval = 100 * time.Millisecond

type Face struct {
	disp     *backpack.Display
	clock    clockwork.Clock
	blink    bool
	military bool
}

func New(disp *backpack.Display, clock clockwork.Clock) *Face {
	return &Face{
		disp:  disp,
		clock: clock,
	}
}

// SetBlink makes the colon spend the first half of each second on and the
// second half off.
func (f *Face) SetBlink(on bool) {
	f.blink = on
}

// SetMilitary switches between 12 and 24 hour time.
func (f *Face) SetMilitary(on bool) {
	f.military = on
}

// Show renders the clock's current time, batching the digit and colon
// updates into a single flush.
func (f *Face) Show() error {
	now := f.clock.Now()
	hour := now.Hour()
	if !f.military {
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}
	colonOn := true
	if f.blink {
		colonOn = now.Nanosecond() < int(500*time.Millisecond)
	}

	f.disp.RefreshOn(false)
	if err := f.disp.Print(fmt.Sprintf("%2d:%02d", hour, now.Minute())); err != nil {
		f.disp.RefreshOn(true)
		return err
	}
	f.disp.SetColon(colonOn)
	return f.disp.RefreshOn(true)
}

// Run redraws the face until quit closes. The cadence comes from the
// clock, so tests can drive it with a fake one.
func (f *Face) Run(quit <-chan struct{}) {
	for {
		select {
		case <-quit:
			return
		case <-f.clock.After(refreshInterval):
			if err := f.Show(); err != nil {
				log.Printf("clockface: %s", err.Error())
			}
		}
	}
}
