package game

import "fmt"

// Move is one ply: a queen relocation followed by an arrow shot.
type Move struct {
	QueenSrc uint `json:"queen_src" yaml:"queen_src"`
	QueenDst uint `json:"queen_dst" yaml:"queen_dst"`
	ArrowDst uint `json:"arrow_dst" yaml:"arrow_dst"`
}

// NoMove stands for "no previous move", it is what the first player receives.
var NoMove = Move{QueenSrc: None, QueenDst: None, ArrowDst: None}

// IsNone reports whether any field of m is unset. Such a move is never applied.
func (m Move) IsNone() bool {
	return m.QueenSrc == None || m.QueenDst == None || m.ArrowDst == None
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%d->%d@%d", m.QueenSrc, m.QueenDst, m.ArrowDst)
}
