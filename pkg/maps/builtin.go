package maps

// map1Rows - карта прототипа, 30x10. A стартует в (1,1), B в (28,8).
var map1Rows = []string{
	"..............................",
	".A......####.....########.....",
	"...#..#......##.##............",
	"...#..#..###.#................",
	"...#..#......#.....#####...#..",
	"......#......#.....#.......#..",
	"..#.......#..#.....#.......#..",
	"..........#.....#.....#....#..",
	"....####..#..#..#.......#...B.",
	"...................#..........",
}

// Map1 returns the prototype battlefield.
func Map1(tileSize float64) Map {
	m, err := ParseASCII("map1", map1Rows, tileSize)
	if err != nil {
		panic("maps: built-in map1 is broken: " + err.Error())
	}
	return m
}

// Builtin looks up a built-in map by name.
func Builtin(name string, tileSize float64) (Map, bool) {
	switch name {
	case "map1", "":
		return Map1(tileSize), true
	default:
		return Map{}, false
	}
}
