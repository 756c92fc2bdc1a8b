// Package clock abstracts the time source behind a single configured zone so
// day-of-week and window computations stay consistent across the service.
package clock

import "time"

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type zoneClock struct {
	loc *time.Location
}

// New returns a wall clock pinned to the named IANA time zone.
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *zoneClock) Location() *time.Location {
	return c.loc
}

// Fixed is a clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Location() *time.Location {
	return f.T.Location()
}

// Set moves the fixed clock to t.
func (f *Fixed) Set(t time.Time) {
	f.T = t
}

// DateOf truncates t to its local calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
