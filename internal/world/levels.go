package world

// DefaultLevel is the built-in 16x16 layout.
var DefaultLevel = []string{
	"################",
	"#..............#",
	"#..##########..#",
	"#........#..#..#",
	"#...........#..#",
	"#..............#",
	"#..##########..#",
	"#..#....#...#..#",
	"#..#....#...#..#",
	"#..............#",
	"#..............#",
	"#..##########..#",
	"#..............#",
	"#..............#",
	"#..............#",
	"################",
}

// NewDefaultGrid returns the built-in level as a grid
func NewDefaultGrid() *Grid {
	return MustNewGrid(DefaultLevel)
}
