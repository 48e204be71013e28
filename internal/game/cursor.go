package game

// The cursor may move at any time, including during the opponent's turn.
// Each move returns false when the cursor is already at the edge.

func (g *Game) MoveUp() bool {
	return g.moveCursor(Position{Row: g.Cursor.Row + 1, Col: g.Cursor.Col})
}

func (g *Game) MoveDown() bool {
	return g.moveCursor(Position{Row: g.Cursor.Row - 1, Col: g.Cursor.Col})
}

func (g *Game) MoveLeft() bool {
	return g.moveCursor(Position{Row: g.Cursor.Row, Col: g.Cursor.Col - 1})
}

func (g *Game) MoveRight() bool {
	return g.moveCursor(Position{Row: g.Cursor.Row, Col: g.Cursor.Col + 1})
}

// moveCursor shifts the Selected flag so exactly one slot stays highlighted.
func (g *Game) moveCursor(to Position) bool {
	if !to.InBounds() {
		return false
	}
	g.Board[g.Cursor.Row][g.Cursor.Col].Selected = false
	g.Board[to.Row][to.Col].Selected = true
	g.Cursor = to
	return true
}
