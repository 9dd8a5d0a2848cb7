package countdown

import (
	"math/rand"
	"testing"
	"time"
)

func TestRemaining_KnownValues(t *testing.T) {
	target := time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Duration
	}{
		{
			name: "one day before",
			now:  time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
			want: Duration{Days: 1},
		},
		{
			name: "one second before",
			now:  time.Date(2025, 4, 3, 23, 59, 59, 0, time.UTC),
			want: Duration{Seconds: 1},
		},
		{
			name: "mixed units",
			now:  time.Date(2025, 4, 1, 21, 28, 15, 0, time.UTC),
			want: Duration{Days: 2, Hours: 2, Minutes: 31, Seconds: 45},
		},
		{
			name: "sub-second remainder is truncated",
			now:  time.Date(2025, 4, 3, 23, 59, 58, 400*int(time.Millisecond), time.UTC),
			want: Duration{Seconds: 1},
		},
		{
			name: "at target",
			now:  target,
			want: Duration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(target, tt.now)
			if got != tt.want {
				t.Errorf("Remaining() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRemaining_PastTargetIsNotClamped(t *testing.T) {
	target := time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC)
	now := target.Add(1500 * time.Millisecond)

	got := Remaining(target, now)
	want := Duration{Days: -1, Hours: -1, Minutes: -1, Seconds: -2}
	if got != want {
		t.Errorf("Remaining() = %+v, want %+v", got, want)
	}

	now = target.Add(48 * time.Hour)
	got = Remaining(target, now)
	if got.Days != -2 || got.Hours != 0 || got.Minutes != 0 || got.Seconds != 0 {
		t.Errorf("Remaining() two days late = %+v", got)
	}
}

func TestRemaining_DecompositionProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		diff := r.Int63n(400 * msPerDay)
		target := now.Add(time.Duration(diff) * time.Millisecond)

		got := Remaining(target, now)
		if got.Days < 0 || got.Hours < 0 || got.Minutes < 0 || got.Seconds < 0 {
			t.Fatalf("diff %d: negative field in %+v", diff, got)
		}
		if got.Hours > 23 || got.Minutes > 59 || got.Seconds > 59 {
			t.Fatalf("diff %d: field out of range in %+v", diff, got)
		}
		sum := got.Milliseconds()
		if sum > diff || diff >= sum+msPerSecond {
			t.Fatalf("diff %d: sum %d violates sum <= diff < sum+1000 (%+v)", diff, sum, got)
		}
	}
}

func TestParseTarget(t *testing.T) {
	loc := time.FixedZone("test", 7*3600)

	got, err := ParseTarget("2025-04-04 00:00:00", loc)
	if err != nil {
		t.Fatalf("ParseTarget failed: %v", err)
	}
	want := time.Date(2025, 4, 4, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseTarget() = %v, want %v", got, want)
	}

	if _, err := ParseTarget("April 4, 2025", loc); err == nil {
		t.Error("expected error for malformed target")
	}
}
