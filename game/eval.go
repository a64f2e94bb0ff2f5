package game

// Terminal scores. Minimax decays the magnitude by one per ply between a
// terminal and the node being scored, so any non-terminal score sits
// strictly inside (-100, 100).
const (
	Player0Wins = 100
	Player1Wins = -100
)

// Evaluate returns Player1Wins if seat 0 is eliminated, Player0Wins if
// seat 1 is eliminated, and 0 otherwise. The move rules never kill both
// seats at once, but Evaluate does not rely on that: seat 0 is checked
// first.
func Evaluate(pos Position) int {
	if pos.Hands[0].Dead() {
		return Player1Wins
	}
	if pos.Hands[1].Dead() {
		return Player0Wins
	}
	return 0
}
