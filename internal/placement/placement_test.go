package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goreek/wordsearch/internal/grid"
	"github.com/Goreek/wordsearch/internal/rng"
)

// script replays fixed draws and records the ranges it was asked for.
type script struct {
	values []int
	ranges [][2]int
}

func (s *script) IntRange(lo, hi int) int {
	s.ranges = append(s.ranges, [2]int{lo, hi})
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func newGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for r, line := range rows {
		for c, ch := range line {
			if ch != '.' {
				require.NoError(t, g.Set(r, c, ch))
			}
		}
	}
	return g
}

func TestSampleDrawOrder(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		values     []int
		wantRanges [][2]int
		want       Placement
	}{
		{
			name:       "south east",
			word:       "CAT",
			values:     []int{1, 2, 1, 1},
			wantRanges: [][2]int{{-1, 1}, {0, 2}, {-1, 1}, {0, 2}},
			want:       Placement{Word: "CAT", Row: 2, Col: 1, Dir: Direction{1, 1}},
		},
		{
			name:       "north",
			word:       "CAT",
			values:     []int{-1, 4, 0, 5},
			wantRanges: [][2]int{{-1, 1}, {2, 5}, {-1, 1}, {0, 5}},
			want:       Placement{Word: "CAT", Row: 4, Col: 5, Dir: Direction{-1, 0}},
		},
		{
			name:       "west forces a non-zero horizontal step",
			word:       "CAT",
			values:     []int{0, 3, 0, 2},
			wantRanges: [][2]int{{-1, 1}, {0, 5}, {0, 1}, {2, 5}},
			want:       Placement{Word: "CAT", Row: 3, Col: 2, Dir: Direction{0, -1}},
		},
		{
			name:       "east",
			word:       "CAT",
			values:     []int{0, 0, 1, 1},
			wantRanges: [][2]int{{-1, 1}, {0, 5}, {0, 1}, {0, 2}},
			want:       Placement{Word: "CAT", Row: 0, Col: 1, Dir: Direction{0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &script{values: tt.values}
			got, ok := Sample(tt.word, 6, 6, s)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRanges, s.ranges)
			assert.Empty(t, s.values)
		})
	}
}

func TestSampleRejectsFullLengthForwardStart(t *testing.T) {
	s := &script{values: []int{1}}
	_, ok := Sample("ABCD", 4, 4, s)
	assert.False(t, ok)
	assert.Len(t, s.ranges, 1)

	s = &script{values: []int{-1, 3, 0, 2}}
	p, ok := Sample("ABCD", 4, 4, s)
	require.True(t, ok)
	assert.Equal(t, Cell{0, 2}, p.End())
}

func TestSpan(t *testing.T) {
	p := Placement{Word: "WORD", Row: 3, Col: 0, Dir: Direction{-1, 1}}
	assert.Equal(t, []Cell{{3, 0}, {2, 1}, {1, 2}, {0, 3}}, p.Span())
	assert.Equal(t, Cell{0, 3}, p.End())
	assert.Equal(t, "WORD@(3,0)NE", p.String())
}

func TestCrossesAndFits(t *testing.T) {
	g := newGrid(t,
		"....",
		".A..",
		"....",
		"...X",
	)

	tests := []struct {
		name    string
		p       Placement
		crosses bool
		fits    bool
	}{
		{"true crossing", Placement{Word: "BAT", Row: 1, Col: 0, Dir: Direction{0, 1}}, true, true},
		{"disjoint", Placement{Word: "BAT", Row: 0, Col: 0, Dir: Direction{0, 1}}, false, true},
		{"conflict", Placement{Word: "BAT", Row: 1, Col: 1, Dir: Direction{0, 1}}, false, false},
		{"crossing and conflict", Placement{Word: "AAB", Row: 1, Col: 1, Dir: Direction{1, 1}}, true, false},
		{"out of bounds", Placement{Word: "BAT", Row: 0, Col: 2, Dir: Direction{0, 1}}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.crosses, Crosses(g, tt.p))
			assert.Equal(t, tt.fits, Fits(g, tt.p))
		})
	}
}

func TestTryPlaceCommits(t *testing.T) {
	g := newGrid(t,
		"....",
		"....",
		"....",
		"....",
	)

	p, ok := TryPlace("TEA", g, &script{values: []int{1, 0, 0, 0}}, false)
	require.True(t, ok)
	assert.Equal(t, Direction{1, 0}, p.Dir)
	assert.Equal(t, "T...\nE...\nA...\n....", g.String())
	assert.Equal(t, 3, g.FilledCount())
}

func TestTryPlaceRequiresIntersection(t *testing.T) {
	g := newGrid(t,
		"T...",
		"E...",
		"A...",
		"....",
	)

	// Row 3 eastwards misses every letter.
	_, ok := TryPlace("ATE", g, &script{values: []int{0, 3, 1, 0}}, true)
	assert.False(t, ok)
	assert.Equal(t, 3, g.FilledCount())

	// Row 2 eastwards starts on the existing A.
	p, ok := TryPlace("ATE", g, &script{values: []int{0, 2, 1, 0}}, true)
	require.True(t, ok)
	assert.Equal(t, Cell{2, 2}, p.End())
	assert.Equal(t, "T...\nE...\nATE.\n....", g.String())
}

func TestTryPlaceLeavesGridUntouchedOnConflict(t *testing.T) {
	g := newGrid(t,
		"....",
		".Z..",
		"....",
		"....",
	)
	before := g.String()
	writes := g.Writes()

	// South east from the corner: Q fits, R clashes with Z.
	_, ok := TryPlace("QRS", g, &script{values: []int{1, 0, 1, 0}}, false)
	assert.False(t, ok)
	assert.Equal(t, before, g.String())
	assert.Equal(t, writes, g.Writes())
}

func TestTryPlaceOversizedConsumesNothing(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	s := rng.New(1)
	_, ok := TryPlace("ELEPHANT", g, s, false)
	assert.False(t, ok)
	assert.Zero(t, s.Draws())
}

func TestTryPlaceSpanStaysInBounds(t *testing.T) {
	s := rng.New(2024)
	for _, size := range []int{2, 3, 5, 8} {
		for _, word := range []string{"AB", "ABC", "ABCDE", "ABCDEFGH"} {
			if Oversized(len(word), size, size) {
				continue
			}
			for range 200 {
				g, err := grid.New(size, size)
				require.NoError(t, err)

				p, ok := TryPlace(word, g, s, false)
				if !ok {
					continue
				}
				for _, c := range p.Span() {
					require.True(t, g.InBounds(c.Row, c.Col), "%s out of bounds on %dx%d", p, size, size)
				}
			}
		}
	}
}

func TestDirectionDistribution(t *testing.T) {
	s := rng.New(5)
	counts := map[Direction]int{}
	const attempts = 24000
	for range attempts {
		p, ok := Sample("A", 5, 5, s)
		require.True(t, ok)
		require.True(t, p.Dir.Valid())
		counts[p.Dir]++
	}

	assert.Len(t, counts, 8)
	// Each vertical or diagonal direction is drawn with probability 1/9,
	// each pure horizontal direction with probability 1/6.
	for d, n := range counts {
		want := attempts / 9
		if d.DRow == 0 {
			want = attempts / 6
		}
		assert.InDelta(t, want, n, float64(want)/5, "direction %s", d)
	}
}

func TestDirection(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Directions {
		assert.True(t, d.Valid())
		assert.Equal(t, d, d.Reverse().Reverse())
		seen[d.String()] = true
	}
	assert.Len(t, seen, 8)
	assert.False(t, Direction{}.Valid())
	assert.Equal(t, "invalid", Direction{2, 0}.String())
}
