package model

// stamp writes pattern rows starting at (startX, startY), wrapping around the edges
func (g *Grid) stamp(startX, startY int, pattern [][]bool) {
	for y, row := range pattern {
		py := ((startY+y)%g.height + g.height) % g.height
		for x, cell := range row {
			px := ((startX+x)%g.width + g.width) % g.width
			g.cells[g.index(px, py)] = cell
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	g.stamp(startX, startY, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// AddBlinker adds a horizontal period-2 blinker
func (g *Grid) AddBlinker(startX, startY int) {
	g.stamp(startX, startY, [][]bool{{true, true, true}})
}

// AddBlock adds a 2x2 still life
func (g *Grid) AddBlock(startX, startY int) {
	g.stamp(startX, startY, [][]bool{
		{true, true},
		{true, true},
	})
}

// SeedPatterns clears the grid and places gliders, blinkers and a block
func (g *Grid) SeedPatterns() {
	g.Clear()

	g.AddGlider(1, 1)
	g.AddBlock(g.width/2, g.height/2)
	g.AddBlinker(g.width/4, g.height/4)

	if g.width >= 20 && g.height >= 15 {
		g.AddGlider(g.width-8, 5)
		g.AddBlinker(3*g.width/4, 3*g.height/4)
	}
}
