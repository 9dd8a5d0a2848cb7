package countdown

import (
	"fmt"
	"time"

	"github.com/julianstephens/awawa/internal/constants"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Duration is the whole-unit breakdown of the time left until a target.
// Fields go negative once the target has passed.
type Duration struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Remaining decomposes target-now (in milliseconds) into days, hours,
// minutes and seconds. Each field is floor(remainder / unit) where the
// remainder keeps the sign of the difference. No clamping at zero.
func Remaining(target, now time.Time) Duration {
	diff := target.Sub(now).Milliseconds()
	return Duration{
		Days:    floorDiv(diff, msPerDay),
		Hours:   floorDiv(diff%msPerDay, msPerHour),
		Minutes: floorDiv(diff%msPerHour, msPerMinute),
		Seconds: floorDiv(diff%msPerMinute, msPerSecond),
	}
}

// Milliseconds reassembles the duration, dropping sub-second precision
func (d Duration) Milliseconds() int64 {
	return d.Days*msPerDay + d.Hours*msPerHour + d.Minutes*msPerMinute + d.Seconds*msPerSecond
}

func (d Duration) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", d.Days, d.Hours, d.Minutes, d.Seconds)
}

// ParseTarget parses a target literal in constants.TargetFormat. A nil
// location means local time.
func ParseTarget(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(constants.TargetFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid countdown target %q (want %q): %w", s, constants.TargetFormat, err)
	}
	return t, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
