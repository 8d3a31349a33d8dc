package shape

import "sync"

// defaultBuckets is the built-in shape table, one bucket per colour.
var defaultBuckets = [][][]string{
	{ // small pieces and diagonals
		{"#"},
		{"##"},
		{"#", "#"},
		{".#", "#."},
		{"#.", ".#"},
		{"###"},
		{"#", "#", "#"},
		{"..#", ".#.", "#.."},
		{"#..", ".#.", "..#"},
		{"##", "#."},
	},
	{ // corners, square, tetrominoes
		{".#", "##"},
		{"#.", "##"},
		{"##", ".#"},
		{"##", "##"},
		{"..#", "###"},
		{".#.", "###"},
		{"#..", "###"},
		{"####"},
		{"#.", "#.", "#.", "##"},
		{".#", ".#", ".#", "##"},
	},
	{ // T, S, Z and long hooks
		{"###", ".#."},
		{".#.", "###"},
		{"#.", "##", "#."},
		{".#", "##", ".#"},
		{"##.", ".##"},
		{".##", "##."},
		{".#..", "####"},
		{"..#.", "####"},
		{"#...", "####"},
	},
	{ // lines, big corners, slabs
		{"####", "#..."},
		{".#", "##", "#."},
		{"#####"},
		{"#", "#", "#", "#", "#"},
		{"#..", "#..", "###"},
		{"..#", "..#", "###"},
		{"###", "..#", "..#"},
		{"###", "#..", "#.."},
		{"###", "###"},
		{"##", "##", "##"},
	},
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(defaultBuckets)
	if err != nil {
		panic("shape: default catalog: " + err.Error())
	}
	return c
})

// Default returns the built-in catalog of four colour buckets.
func Default() *Catalog {
	return defaultCatalog()
}
