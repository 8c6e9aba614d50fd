package vclock

import "testing"

func TestTickAndAt(t *testing.T) {
	var c Clock
	if got := c.At(3); got != 0 {
		t.Errorf("At(3) on zero clock = %d, want 0", got)
	}

	c.Tick(0)
	c.Tick(0)
	c.Tick(2)
	if got := c.At(0); got != 2 {
		t.Errorf("At(0) = %d, want 2", got)
	}
	if got := c.At(1); got != 0 {
		t.Errorf("At(1) = %d, want 0", got)
	}
	if got := c.At(2); got != 1 {
		t.Errorf("At(2) = %d, want 1", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		a, b Clock
		want Clock
	}{
		{
			name: "disjoint components",
			a:    Clock{2, 0, 0},
			b:    Clock{0, 3, 0},
			want: Clock{2, 3, 0},
		},
		{
			name: "pointwise max",
			a:    Clock{5, 1},
			b:    Clock{3, 4},
			want: Clock{5, 4},
		},
		{
			name: "other longer",
			a:    Clock{1},
			b:    Clock{0, 0, 7},
			want: Clock{1, 0, 7},
		},
		{
			name: "join with empty",
			a:    Clock{1, 2},
			b:    nil,
			want: Clock{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Clone()
			got.Join(tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("Join result length = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("component %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHappensBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Clock
		want bool
	}{
		{name: "empty before anything", a: nil, b: Clock{1, 2}, want: true},
		{name: "equal clocks", a: Clock{1, 2}, b: Clock{1, 2}, want: true},
		{name: "strictly covered", a: Clock{1, 2}, b: Clock{3, 2}, want: true},
		{name: "one component ahead", a: Clock{1, 3}, b: Clock{3, 2}, want: false},
		{name: "longer with zero tail", a: Clock{1, 0, 0}, b: Clock{1}, want: true},
		{name: "longer with nonzero tail", a: Clock{1, 0, 4}, b: Clock{1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.HappensBefore(tt.b); got != tt.want {
				t.Errorf("%v.HappensBefore(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Clock{1, 2, 3}
	b := a.Clone()
	b.Tick(0)
	if a[0] != 1 {
		t.Errorf("Tick on clone mutated original: %v", a)
	}
}

func TestReset(t *testing.T) {
	c := Clock{4, 5}
	c.Reset()
	for i, v := range c {
		if v != 0 {
			t.Errorf("component %d = %d after Reset, want 0", i, v)
		}
	}
}

func TestString(t *testing.T) {
	c := Clock{3, 0, 7}
	if got, want := c.String(), "{T0@3 T2@7}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Clock(nil).String(), "{}"; got != want {
		t.Errorf("String() on empty = %q, want %q", got, want)
	}
}
