package bot

import (
	"ctchen222/Noughts-And-Crosses/internal/apperror"
	"ctchen222/Noughts-And-Crosses/internal/game"
)

// Rule names the heuristic tier that produced a move.
type Rule string

const (
	RuleWin    Rule = "win"
	RuleBlock  Rule = "block"
	RuleRandom Rule = "random"
)

// Decision is the cell picked for the automated player.
type Decision struct {
	Position game.Position
	Rule     Rule
}

// MoveCalculator picks the automated player's next cell from a snapshot.
type MoveCalculator interface {
	CalculateNextMove(snapshot game.Snapshot) (Decision, error)
}

// BotMoveCalculator implements MoveCalculator with the tiered heuristic.
type BotMoveCalculator struct {
	rng game.Rand
}

func NewMoveCalculator(rng game.Rand) *BotMoveCalculator {
	return &BotMoveCalculator{rng: rng}
}

// CalculateNextMove calls the package-level function with the calculator's random source.
func (c *BotMoveCalculator) CalculateNextMove(snapshot game.Snapshot) (Decision, error) {
	return CalculateNextMove(snapshot, c.rng)
}

// CalculateNextMove determines the automated player's move for the snapshot's difficulty.
// It returns apperror.ErrNoMoveAvailable on a full board.
func CalculateNextMove(snapshot game.Snapshot, rng game.Rand) (Decision, error) {
	switch snapshot.Difficulty {
	case game.Easy:
		return easyMove(&snapshot.Board, rng)
	default:
		return hardMove(&snapshot.Board, rng)
	}
}

// easyMove picks uniformly among the empty cells.
func easyMove(board *game.Board, rng game.Rand) (Decision, error) {
	availableMoves := board.EmptyPositions()
	if len(availableMoves) == 0 {
		return Decision{}, apperror.ErrNoMoveAvailable
	}

	return Decision{
		Position: availableMoves[rng.IntN(len(availableMoves))],
		Rule:     RuleRandom,
	}, nil
}

// hardMove will win if it can, block if it must, otherwise move randomly.
func hardMove(board *game.Board, rng game.Rand) (Decision, error) {
	// 1. Win: complete our own line
	if pos, ok := findLineToComplete(board, game.Automated); ok {
		return Decision{Position: pos, Rule: RuleWin}, nil
	}

	// 2. Block: the human is one cell away from a line
	if pos, ok := findLineToComplete(board, game.Human); ok {
		return Decision{Position: pos, Rule: RuleBlock}, nil
	}

	// 3. Random
	return easyMove(board, rng)
}

// findLineToComplete returns the empty cell of the first line where owner
// holds two cells and the other side none.
func findLineToComplete(board *game.Board, owner game.Owner) (game.Position, bool) {
	for _, line := range game.Lines {
		if lineScore(board, line, owner) != 2 {
			continue
		}
		for _, pos := range line {
			if board.At(pos).Cell.IsEmpty() {
				return pos, true
			}
		}
	}
	return game.Position{}, false
}

// lineScore counts +1 for every cell held by owner and -1 for every cell held by the other side.
func lineScore(board *game.Board, line [3]game.Position, owner game.Owner) int {
	score := 0
	for _, pos := range line {
		occupant, ok := board.At(pos).Cell.Occupant()
		if !ok {
			continue
		}
		if occupant == owner {
			score++
		} else {
			score--
		}
	}
	return score
}
