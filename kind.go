package trit

//go:generate stringer -type Kind

// Kind tags the shape of a Trit.
type Kind uint8

const (
	False Kind = iota
	True
	Fuzzy
)
