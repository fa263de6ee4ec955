// Package chord detects two-press key sequences such as "gg".
//
// Each chord key is a small state machine, Idle -> Pending -> Idle, whose
// Pending state carries an armed-until deadline. Deadlines are checked
// against an injectable clock whenever a key arrives or Expire is called,
// so nothing here runs on timers of its own.
package chord

import (
	"log"
	"time"
)

// DefaultWindow is the time allowed between the two presses
const DefaultWindow = 500 * time.Millisecond

// Disambiguator tracks pending chords for a fixed set of keys
type Disambiguator struct {
	window     time.Duration
	now        func() time.Time
	keys       []string
	armedUntil map[string]time.Time // zero time = idle
	timeouts   int
}

// New creates a disambiguator for keys with the given window
func New(window time.Duration, keys ...string) *Disambiguator {
	if window <= 0 {
		window = DefaultWindow
	}
	d := &Disambiguator{
		window:     window,
		now:        time.Now,
		keys:       append([]string(nil), keys...),
		armedUntil: make(map[string]time.Time, len(keys)),
	}
	for _, k := range keys {
		d.armedUntil[k] = time.Time{}
	}
	return d
}

// SetClock replaces the time source
func (d *Disambiguator) SetClock(now func() time.Time) {
	d.now = now
}

// Window returns the disambiguation window
func (d *Disambiguator) Window() time.Duration {
	return d.window
}

// Handles reports whether key is a chord key
func (d *Disambiguator) Handles(key string) bool {
	_, ok := d.armedUntil[key]
	return ok
}

// Press feeds one press of key and reports whether it completed the chord.
// Any other pending chord is reset first.
func (d *Disambiguator) Press(key string) bool {
	if !d.Handles(key) {
		return false
	}
	now := d.now()
	d.expire(now)

	for _, k := range d.keys {
		if k != key {
			d.armedUntil[k] = time.Time{}
		}
	}

	if until := d.armedUntil[key]; !until.IsZero() && now.Before(until) {
		d.armedUntil[key] = time.Time{}
		return true
	}

	d.armedUntil[key] = now.Add(d.window)
	return false
}

// ResetAll returns every chord to idle
func (d *Disambiguator) ResetAll() {
	for _, k := range d.keys {
		d.armedUntil[k] = time.Time{}
	}
}

// Expire drops chords whose window has elapsed and returns their keys
func (d *Disambiguator) Expire() []string {
	return d.expire(d.now())
}

func (d *Disambiguator) expire(now time.Time) []string {
	var expired []string
	for _, k := range d.keys {
		until := d.armedUntil[k]
		if until.IsZero() || now.Before(until) {
			continue
		}
		d.armedUntil[k] = time.Time{}
		d.timeouts++
		expired = append(expired, k)
		log.Printf("Chord: %q timed out after %v", k, d.window)
	}
	return expired
}

// Pending returns the key waiting for its second press, or ""
func (d *Disambiguator) Pending() string {
	now := d.now()
	for _, k := range d.keys {
		if until := d.armedUntil[k]; !until.IsZero() && now.Before(until) {
			return k
		}
	}
	return ""
}

// Timeouts returns how many chords expired without completing
func (d *Disambiguator) Timeouts() int {
	return d.timeouts
}
