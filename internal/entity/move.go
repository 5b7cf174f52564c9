package entity

// Move is a seed that was just placed at (Row, Col).
type Move struct {
	Seed Seed
	Row  int
	Col  int
}
