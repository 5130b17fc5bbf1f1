package main

import (
	"reflect"
	"testing"
)

func TestArrangeTile(t *testing.T) {
	work := Rect{0, 0, 1280, 800}

	tests := []struct {
		name       string
		n          int
		masterSize int
		growth     int
		want       []Rect
	}{
		{
			name:       "three windows",
			n:          3,
			masterSize: 666,
			want: []Rect{
				{0, 0, 664, 796},
				{666, 0, 610, 396},
				{666, 398, 610, 396},
			},
		},
		{
			name:       "master grown by 20",
			n:          3,
			masterSize: 686,
			want: []Rect{
				{0, 0, 684, 796},
				{686, 0, 590, 396},
				{686, 398, 590, 396},
			},
		},
		{
			name:       "stack growth",
			n:          3,
			masterSize: 666,
			growth:     40,
			want: []Rect{
				{0, 0, 664, 796},
				{666, 0, 610, 416},
				{666, 418, 610, 376},
			},
		},
		{
			name:       "two windows",
			n:          2,
			masterSize: 666,
			want: []Rect{
				{0, 0, 664, 796},
				{666, 0, 610, 796},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := arrange(TILE, work, tt.n, tt.masterSize, tt.growth, 2)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("arrange(TILE, n=%d, msz=%d, growth=%d) =\n%v, want\n%v",
					tt.n, tt.masterSize, tt.growth, got, tt.want)
			}
		})
	}
}

func TestArrangeBstack(t *testing.T) {
	work := Rect{0, 0, 1280, 800}
	got := arrange(BSTACK, work, 3, 416, 0, 2)
	want := []Rect{
		{0, 0, 1276, 414},
		{0, 416, 636, 380},
		{638, 416, 636, 380},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("arrange(BSTACK, n=3) =\n%v, want\n%v", got, want)
	}
}

func TestArrangeMonocle(t *testing.T) {
	work := Rect{0, 18, 1280, 782}
	got := arrange(MONOCLE, work, 3, 666, 0, 2)
	for i, r := range got {
		if r != work {
			t.Errorf("monocle rect %d = %v, want %v", i, r, work)
		}
	}
}

func TestArrangeGrid(t *testing.T) {
	work := Rect{0, 0, 1280, 800}

	t.Run("four windows two by two", func(t *testing.T) {
		got := arrange(GRID, work, 4, 666, 0, 2)
		want := []Rect{
			{0, 0, 636, 396},
			{0, 400, 636, 396},
			{640, 0, 636, 396},
			{640, 400, 636, 396},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("grid(4) =\n%v, want\n%v", got, want)
		}
	})

	t.Run("five windows use two columns", func(t *testing.T) {
		got := arrange(GRID, work, 5, 666, 0, 2)
		want := []Rect{
			{0, 0, 636, 262},
			{0, 266, 636, 262},
			{0, 532, 636, 262},
			{640, 0, 636, 396},
			{640, 400, 636, 396},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("grid(5) =\n%v, want\n%v", got, want)
		}
	})
}

func TestArrangeSingleWindowFillsWorkArea(t *testing.T) {
	work := Rect{10, 18, 1260, 782}
	for _, mode := range []Mode{TILE, MONOCLE, BSTACK, GRID} {
		got := arrange(mode, work, 1, 666, 0, 2)
		if len(got) != 1 || got[0] != work {
			t.Errorf("mode %d: single window = %v, want [%v]", mode, got, work)
		}
	}
}

func TestArrangeEmpty(t *testing.T) {
	if got := arrange(TILE, Rect{0, 0, 1280, 800}, 0, 666, 0, 2); got != nil {
		t.Errorf("arrange with no clients = %v, want nil", got)
	}
}

// Stacked windows must tile the stack column without gaps: the second
// window starts one border below the first one's interior (their
// borders overlap), later windows keep a two-border distance, and the
// last window's outer edge stops one border short of the bottom.
func TestTileStackCoversColumn(t *testing.T) {
	const border = 2
	work := Rect{0, 0, 1280, 800}
	for n := 3; n <= 7; n++ {
		for _, growth := range []int{0, 10, -10, 37} {
			rs := arrange(TILE, work, n, 666, growth, border)
			for i := 2; i < n; i++ {
				gap := border
				if i > 2 {
					gap = 2 * border
				}
				if want := rs[i-1].Y + rs[i-1].H + gap; rs[i].Y != want {
					t.Errorf("n=%d growth=%d: stack window %d starts at %d, want %d",
						n, growth, i, rs[i].Y, want)
				}
			}
			last := rs[n-1]
			if got, want := last.Y+last.H+3*border, work.Y+work.H; got != want {
				t.Errorf("n=%d growth=%d: stack ends at %d, want %d",
					n, growth, got, want)
			}
		}
	}
}
