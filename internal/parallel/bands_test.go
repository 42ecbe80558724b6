package parallel

import (
	"slices"
	"sync"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		n, parts, minRows int
		want              []Band
	}{
		{0, 4, 1, nil},
		{10, 1, 1, []Band{{0, 10}}},
		{10, 3, 1, []Band{{0, 4}, {4, 7}, {7, 10}}},
		{10, 20, 1, []Band{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10}}},
		{100, 8, 30, []Band{{0, 34}, {34, 67}, {67, 100}}},
		{10, 4, 16, []Band{{0, 10}}},
		{5, 0, 0, []Band{{0, 5}}},
	}
	for _, tt := range tests {
		got := Split(tt.n, tt.parts, tt.minRows)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Split(%d, %d, %d) = %v, want %v", tt.n, tt.parts, tt.minRows, got, tt.want)
		}
	}
}

func TestSplitCoversRange(t *testing.T) {
	for n := 1; n < 200; n += 7 {
		for parts := 1; parts < 12; parts++ {
			bands := Split(n, parts, 3)
			lo := 0
			for _, b := range bands {
				if b.Lo != lo || b.Len() <= 0 {
					t.Fatalf("Split(%d, %d, 3) = %v: gap or empty band", n, parts, bands)
				}
				if len(bands) > 1 && b.Len() < 3 {
					t.Fatalf("Split(%d, %d, 3) = %v: band below minRows", n, parts, bands)
				}
				lo = b.Hi
			}
			if lo != n {
				t.Fatalf("Split(%d, %d, 3) ends at %d", n, parts, lo)
			}
		}
	}
}

func TestBandLen(t *testing.T) {
	if got := (Band{Lo: 3, Hi: 10}).Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestForBands(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 1000
	seen := make([]int, n)
	var mu sync.Mutex
	var bands []Band
	ok := pool.ForBands(n, 16, func(b Band) {
		for y := b.Lo; y < b.Hi; y++ {
			seen[y]++
		}
		mu.Lock()
		bands = append(bands, b)
		mu.Unlock()
	})
	if !ok {
		t.Fatal("ForBands() = false on a running pool")
	}
	for y, c := range seen {
		if c != 1 {
			t.Fatalf("row %d visited %d times, want 1", y, c)
		}
	}
	if len(bands) != 16 {
		t.Errorf("ForBands used %d bands, want 16", len(bands))
	}
}

func TestForBandsClosed(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	called := false
	if pool.ForBands(100, 1, func(Band) { called = true }) {
		t.Error("ForBands() = true on a closed pool")
	}
	if called {
		t.Error("ForBands called fn on a closed pool")
	}
}
