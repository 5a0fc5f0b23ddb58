package game

// EvaluateMobility scores a position from player's perspective by comparing how
// many destinations each side has, normalised by the board size, and how many
// queens each side can still move, normalised by the queen count.
func EvaluateMobility(board *Graph, queens *Queens, player Player) float64 {
	opponent := player.Other()

	own := float64(Mobility(board, queens, player))
	opp := float64(Mobility(board, queens, opponent))
	ownMovable := float64(MovableQueens(board, queens, player))
	oppMovable := float64(MovableQueens(board, queens, opponent))

	mobilityScore := (own - opp) / float64(board.NumVertices())
	movableScore := (ownMovable - oppMovable) / float64(queens.Count())
	return mobilityScore + movableScore
}
