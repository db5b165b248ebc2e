package placement

// Direction is a unit step a word runs along. DRow and DCol are each -1, 0
// or 1, and never both 0.
type Direction struct {
	DRow int
	DCol int
}

// Directions lists the 8 compass directions, clockwise from north.
var Directions = [8]Direction{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

var compassNames = [3][3]string{
	{"NW", "N", "NE"},
	{"W", "", "E"},
	{"SW", "S", "SE"},
}

// String returns the compass name, with rows growing southwards.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return compassNames[d.DRow+1][d.DCol+1]
}

// Valid reports whether d is one of the 8 compass directions.
func (d Direction) Valid() bool {
	return d.DRow >= -1 && d.DRow <= 1 &&
		d.DCol >= -1 && d.DCol <= 1 &&
		(d.DRow != 0 || d.DCol != 0)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.DRow, -d.DCol}
}
