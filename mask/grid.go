package mask

import "image"

// A Grid is a width x height boolean coverage matrix: a cell is true
// when the corresponding canvas pixel is foreground. Grids are built
// once from a rasterized canvas and are read-only afterwards.
type Grid struct {
	width  int
	height int
	cells  []bool // row-major
}

// Samples the given alpha canvas into a new [Grid]. A pixel is
// foreground when its alpha value is >= threshold. The grid origin
// is the canvas Rect.Min point.
func GridFromAlpha(canvas *image.Alpha, threshold uint8) *Grid {
	bounds := canvas.Bounds()
	grid := &Grid{ width: bounds.Dx(), height: bounds.Dy() }
	grid.cells = make([]bool, grid.width*grid.height)
	for y := 0; y < grid.height; y++ {
		row := canvas.Pix[y*canvas.Stride : y*canvas.Stride + grid.width]
		for x, alpha := range row {
			grid.cells[y*grid.width + x] = (alpha >= threshold)
		}
	}
	return grid
}

// Returns the number of columns of the grid.
func (self *Grid) Width() int { return self.width }

// Returns the number of rows of the grid.
func (self *Grid) Height() int { return self.height }

// Returns whether the given cell is foreground. Out of bounds
// coordinates are always background.
func (self *Grid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= self.width || y >= self.height { return false }
	return self.cells[y*self.width + x]
}

// Returns whether the given row has no foreground cells. Out of
// bounds rows are empty.
func (self *Grid) RowIsEmpty(y int) bool {
	if y < 0 || y >= self.height { return true }
	for _, set := range self.cells[y*self.width : (y + 1)*self.width] {
		if set { return false }
	}
	return true
}

// Returns the total number of foreground cells.
func (self *Grid) Count() int {
	var count int
	for _, set := range self.cells {
		if set { count += 1 }
	}
	return count
}
