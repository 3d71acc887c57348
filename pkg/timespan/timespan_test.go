package timespan

import (
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name                    string
		hours, minutes, seconds float64
		want                    float64
	}{
		{"minutes and seconds", 0, 1, 30, 90},
		{"seconds only", 0, 0, 90, 90},
		{"one hour", 1, 0, 0, 3600},
		{"fractional minutes", 0, 1.5, 0, 90},
		{"fractional hours", 1.5, 0, 0, 5400},
		{"overflowing components", 0, 60, 3600, 7200},
		{"negative seconds", 0, 0, -3600, -3600},
		{"large", 0, 0, math.MaxInt64, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.hours, tt.minutes, tt.seconds).Seconds; got != tt.want {
				t.Errorf("New(%v, %v, %v) = %v, want %v", tt.hours, tt.minutes, tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRecompute(t *testing.T) {
	if got := Recompute(1, 1, 1); got != 3661 {
		t.Errorf("Recompute(1, 1, 1) = %v, want 3661", got)
	}
	if got := Recompute(0, 2, 90); got != 210 {
		t.Errorf("Recompute(0, 2, 90) = %v, want 210", got)
	}
}

func TestSetters(t *testing.T) {
	ts := &Timespan{}
	if got := ts.SetTime(1, 1, 1).Seconds; got != 3661 {
		t.Errorf("SetTime(1, 1, 1) = %v, want 3661", got)
	}
	if got := ts.SetSeconds(15).Seconds; got != 15 {
		t.Errorf("SetSeconds(15) = %v, want 15", got)
	}

	minutes := (&Timespan{}).SetMinutes(1.5)
	if minutes.Seconds != 90 || minutes.String() != "00:01:30" {
		t.Errorf("SetMinutes(1.5) = %v (%s)", minutes.Seconds, minutes)
	}

	hours := (&Timespan{}).SetHours(1.5)
	if hours.String() != "01:30:00" {
		t.Errorf("SetHours(1.5) = %s, want 01:30:00", hours)
	}
}

func TestFoldInSetters(t *testing.T) {
	// Current seconds are folded back into the new value.
	ts := FromSeconds(30)
	if got := ts.SetMinutes(2).Seconds; got != 150 {
		t.Errorf("SetMinutes(2) on 30s = %v, want 150", got)
	}

	ts = FromSeconds(30)
	if got := ts.SetHours(1).Seconds; got != 3630 {
		t.Errorf("SetHours(1) on 30s = %v, want 3630", got)
	}

	ts = FromSeconds(30)
	if got := ts.SetMinutes(2).Seconds; got != Recompute(0, 2, 30) {
		t.Errorf("SetMinutes should equal Recompute(0, 2, current), got %v", got)
	}
}

func TestAddUnits(t *testing.T) {
	ts := New(0, 1, 30)
	ts.AddMinutes(2)
	if ts.Seconds != 90+120 {
		t.Errorf("AddMinutes(2) = %v, want 210", ts.Seconds)
	}

	ts = New(0, 0, 30)
	ts.AddHours(2)
	if ts.Seconds != 30+7200 {
		t.Errorf("AddHours(2) = %v, want 7230", ts.Seconds)
	}

	ts = New(0, 0, 0)
	if ts.AddSeconds(-5).Seconds != -5 {
		t.Errorf("AddSeconds(-5) = %v", ts.Seconds)
	}
}

func TestAdd(t *testing.T) {
	ts := &Timespan{}
	if ts.Seconds != 0 {
		t.Fatalf("zero value = %v", ts.Seconds)
	}

	steps := []struct {
		hours, minutes, seconds float64
		want                    float64
	}{
		{0, 0, 59, 59},
		{0, 1, 0, 60 + 59},
		{1, 0, 0, 3600 + 60 + 59},
	}
	for _, step := range steps {
		if got := ts.Add(step.hours, step.minutes, step.seconds).Seconds; got != step.want {
			t.Errorf("Add(%v, %v, %v) = %v, want %v", step.hours, step.minutes, step.seconds, got, step.want)
		}
	}

	if got := (&Timespan{}).Add(-1, 0, 0).Seconds; got != -3600 {
		t.Errorf("Add(-1, 0, 0) = %v, want -3600", got)
	}
}

func TestAddEqualsNetAddition(t *testing.T) {
	cases := [][4]float64{
		{0, 1, 2, 3},
		{-10, 1, -30, 45},
		{7.25, 0.5, 1.5, -0.25},
		{3600, -2, 61, 59},
	}

	for _, c := range cases {
		start, h, m, s := c[0], c[1], c[2], c[3]
		chained := FromSeconds(start).Add(h, m, s).Seconds
		net := FromSeconds(start).AddSeconds(h*3600 + m*60 + s).Seconds
		if math.Abs(chained-net) > 1e-9 {
			t.Errorf("Add(%v, %v, %v) on %v = %v, single addition = %v", h, m, s, start, chained, net)
		}
	}
}

func TestNegate(t *testing.T) {
	ts := FromSeconds(90).Negate()
	if ts.Seconds != -90 || !ts.IsNegative() {
		t.Errorf("Negate() = %v", ts.Seconds)
	}
	if ts.Negate().Seconds != 90 {
		t.Errorf("double Negate() = %v", ts.Seconds)
	}
}

func TestAsUnits(t *testing.T) {
	if got := New(0, 0, 30).AsMinutes(); got != 0.5 {
		t.Errorf("AsMinutes() = %v, want 0.5", got)
	}
	if got := New(0, 30, 0).AsHours(); got != 0.5 {
		t.Errorf("AsHours() = %v, want 0.5", got)
	}
	if got := FromSeconds(-5400).AsHours(); got != -1.5 {
		t.Errorf("AsHours() = %v, want -1.5", got)
	}
}

func TestIsEmpty(t *testing.T) {
	for _, minutes := range []float64{-1, 0, 1} {
		ts := New(0, minutes, 0)
		if ts.IsEmpty() != (minutes == 0) {
			t.Errorf("New(0, %v, 0).IsEmpty() = %v", minutes, ts.IsEmpty())
		}
	}
	if !(&Timespan{}).IsEmpty() {
		t.Error("zero value should be empty")
	}
}

func TestDiff(t *testing.T) {
	t1 := New(0, 2, 10)
	t2 := New(0, 3, 30)

	diff := t1.Diff(t2)
	if diff.Seconds != 80 || diff.String() != "00:01:20" {
		t.Errorf("Diff() = %v (%s), want 80", diff.Seconds, diff)
	}

	diff = t2.Diff(t1)
	if diff.Seconds != 80 {
		t.Errorf("absolute Diff() = %v, want 80", diff.Seconds)
	}

	diff = t2.Diff(t1, false)
	if !diff.IsNegative() || diff.Seconds != -80 || diff.String() != "-00:01:20" {
		t.Errorf("signed Diff() = %v (%s), want -80", diff.Seconds, diff)
	}

	if t1.Seconds != 130 || t2.Seconds != 210 {
		t.Error("Diff() must not modify its operands")
	}
}

func TestSum(t *testing.T) {
	ts := New(0, 0, 4).Sum(New(0, 0, 1), New(0, 0, 2), nil, New(0, 0, 3))
	if ts.Seconds != 10 {
		t.Errorf("Sum() = %v, want 10", ts.Seconds)
	}
	if got := FromSeconds(1).Sum().Seconds; got != 1 {
		t.Errorf("empty Sum() = %v, want 1", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{-10, 5, -1},
		{5, 5, 0},
		{60, 59.5, 1},
	}
	for _, tt := range tests {
		a, b := FromSeconds(tt.a), FromSeconds(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if a.Equal(b) != (tt.want == 0) {
			t.Errorf("Equal(%v, %v) = %v", tt.a, tt.b, a.Equal(b))
		}
	}
}

func TestClone(t *testing.T) {
	original := FromSeconds(10)
	clone := original.Clone()
	clone.AddSeconds(5)
	if original.Seconds != 10 || clone.Seconds != 15 {
		t.Errorf("Clone() shares state: %v %v", original.Seconds, clone.Seconds)
	}
}

func TestUnits(t *testing.T) {
	tests := []struct {
		seconds float64
		want    Units
	}{
		{0, Units{}},
		{5430, Units{Hours: 1, Minutes: 30, Seconds: 30, TotalMinutes: 90}},
		{-3661.9, Units{Negative: true, Hours: 1, Minutes: 1, Seconds: 1, TotalMinutes: 61}},
		{31539602, Units{Hours: 8761, Minutes: 0, Seconds: 2, TotalMinutes: 525660}},
		{59.999, Units{Seconds: 59}},
	}

	for _, tt := range tests {
		if got := FromSeconds(tt.seconds).Units(); got != tt.want {
			t.Errorf("Units(%v) = %+v, want %+v", tt.seconds, got, tt.want)
		}
	}

	ts := New(1, 2, 30)
	if back := FromUnits(ts.Units()); !back.Equal(ts) {
		t.Errorf("FromUnits(Units()) = %v, want %v", back.Seconds, ts.Seconds)
	}
	neg := FromSeconds(-90)
	if back := FromUnits(neg.Units()); !back.Equal(neg) {
		t.Errorf("FromUnits(Units()) = %v, want -90", back.Seconds)
	}
}

func TestUnitsBeyondInt64(t *testing.T) {
	for _, text := range []string{"99999999999999999999:00:00", "-99999999999999999999:59:59"} {
		ts, err := Parse(DefaultFormat, text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}

		u := ts.Units()
		if u.Hours < math.MaxInt64 {
			t.Errorf("Units(%q).Hours = %v, want beyond the int64 range", text, u.Hours)
		}
		if u.Minutes < 0 || u.Minutes > 59 || u.Seconds < 0 || u.Seconds > 59 {
			t.Errorf("Units(%q) = %+v, minutes and seconds out of range", text, u)
		}
		if u.TotalMinutes < u.Hours {
			t.Errorf("Units(%q).TotalMinutes = %v, want >= Hours", text, u.TotalMinutes)
		}
		if u.Negative != ts.IsNegative() {
			t.Errorf("Units(%q).Negative = %v, want %v", text, u.Negative, ts.IsNegative())
		}
		if got, want := ts.Format("%h"), pad2(u.Hours); got != want {
			t.Errorf("Format(%%h) = %q, Units().Hours renders %q", got, want)
		}
	}
}

func TestFromInstantDiff(t *testing.T) {
	date := func(s string) time.Time {
		t.Helper()
		v, err := time.Parse("2006-01-02 15:04:05", s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	tests := []struct {
		start, end string
		template   string
		want       string
	}{
		{"2015-01-01 23:00:00", "2015-01-03 02:00:00", DefaultFormat, "27:00:00"},
		{"2021-01-03 02:00:00", "2021-01-01 23:00:00", DefaultFormat, "-27:00:00"},
		{"2021-01-01 12:00:00", "2022-01-01 13:00:02", "%h:%i:%s", "8761:00:02"},
	}

	for _, tt := range tests {
		ts := FromInstantDiff(date(tt.start), date(tt.end))
		if got := ts.Format(tt.template); got != tt.want {
			t.Errorf("FromInstantDiff(%s, %s) = %s, want %s", tt.start, tt.end, got, tt.want)
		}
	}

	ts := CreateFromDateDiff(date("2021-01-01 12:00:00"), date("2022-01-01 13:00:02"))
	if ts.Seconds != 31539602 {
		t.Errorf("CreateFromDateDiff() = %v, want 31539602", ts.Seconds)
	}
}

type fixedInstant int64

func (f fixedInstant) Unix() int64 { return int64(f) }

func TestFromInstantDiffInterface(t *testing.T) {
	if got := FromInstantDiff(fixedInstant(100), fixedInstant(40)).Seconds; got != -60 {
		t.Errorf("FromInstantDiff() = %v, want -60", got)
	}
}
