package ports

import "time"

// Clock supplies the current time. Tests substitute a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
