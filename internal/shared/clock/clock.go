package clock

import "time"

// Default is the default clock.
var Default Clock = Func(time.Now)

// Clock tells the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (fn Func) Now() time.Time { return fn() }
