package vclock

import "testing"

func TestEpochRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		tid   int
		clock uint64
	}{
		{name: "zero", tid: 0, clock: 0},
		{name: "tid only", tid: 5, clock: 0},
		{name: "clock only", tid: 0, clock: 0x1234},
		{name: "both", tid: 42, clock: 123456},
		{name: "max clock", tid: 1, clock: epochClockMask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEpoch(tt.tid, tt.clock)
			tid, clock := e.Decode()
			if tid != tt.tid || clock != tt.clock {
				t.Errorf("Decode() = (%d, %d), want (%d, %d)", tid, clock, tt.tid, tt.clock)
			}
		})
	}
}

func TestEpochClockTruncation(t *testing.T) {
	e := NewEpoch(1, epochClockMask+5)
	tid, clock := e.Decode()
	if tid != 1 {
		t.Errorf("tid = %d, want 1", tid)
	}
	if clock != 4 {
		t.Errorf("clock = %d, want truncation to 4", clock)
	}
}

func TestEpochHappensBefore(t *testing.T) {
	tests := []struct {
		name string
		e    Epoch
		c    Clock
		want bool
	}{
		{name: "covered", e: NewEpoch(1, 3), c: Clock{0, 5}, want: true},
		{name: "exact", e: NewEpoch(1, 5), c: Clock{0, 5}, want: true},
		{name: "ahead", e: NewEpoch(1, 6), c: Clock{0, 5}, want: false},
		{name: "thread unknown to clock", e: NewEpoch(3, 1), c: Clock{9}, want: false},
		{name: "zero epoch before anything", e: NewEpoch(3, 0), c: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.HappensBefore(tt.c); got != tt.want {
				t.Errorf("%v.HappensBefore(%v) = %v, want %v", tt.e, tt.c, got, tt.want)
			}
		})
	}
}

func TestEpochString(t *testing.T) {
	if got, want := NewEpoch(2, 9).String(), "T2@9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
