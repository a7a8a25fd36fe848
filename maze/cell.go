package maze

// Cell represents a single cell in a maze grid.
// A cell is either a wall or a floor that can be walked on.
type Cell struct {
	// Wall indicates whether the cell blocks movement.
	Wall bool
}

// Coordinate addresses a cell in the grid. X is the column and Y is the row,
// both 0-based. Coordinates compare by value.
type Coordinate struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Wall is an axis-aligned strip of wall cells. (X, Y) is the top-left cell,
// and either Width or Height is 1.
type Wall struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Cells lists the coordinates covered by the wall in row-major order.
func (w Wall) Cells() []Coordinate {
	cells := make([]Coordinate, 0, w.Width*w.Height)
	for y := w.Y; y < w.Y+w.Height; y++ {
		for x := w.X; x < w.X+w.Width; x++ {
			cells = append(cells, Coordinate{X: x, Y: y})
		}
	}
	return cells
}

// directions are the offsets of the four orthogonal neighbors in the order
// up, right, down, left.
var directions = [4]Coordinate{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// adjacent reports whether a and b are orthogonal neighbors.
func adjacent(a, b Coordinate) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
