package game

// Board boundaries
const (
	BoardSize = 3
	BorderMin = 0
	BorderMax = BoardSize - 1
)

// Owner identifies which side occupies a cell.
type Owner uint8

const (
	Nobody Owner = iota
	Human
	Automated
)

func (o Owner) String() string {
	switch o {
	case Human:
		return "human"
	case Automated:
		return "automated"
	default:
		return "nobody"
	}
}

// Opponent returns the other side. Nobody has no opponent.
func (o Owner) Opponent() Owner {
	switch o {
	case Human:
		return Automated
	case Automated:
		return Human
	default:
		return Nobody
	}
}

// Mark is the token drawn for the owner.
func (o Owner) Mark() string {
	switch o {
	case Human:
		return "x"
	case Automated:
		return "o"
	default:
		return "*"
	}
}

// Cell is either empty or occupied by one owner.
type Cell struct {
	occupant Owner
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Occupied returns a cell taken by o.
func Occupied(o Owner) Cell {
	return Cell{occupant: o}
}

func (c Cell) IsEmpty() bool {
	return c.occupant == Nobody
}

// Occupant reports who holds the cell; ok is false for an empty cell.
func (c Cell) Occupant() (owner Owner, ok bool) {
	return c.occupant, c.occupant != Nobody
}

// Slot is a board cell plus its highlight flag. Selection never affects occupancy.
type Slot struct {
	Cell     Cell
	Selected bool
}

// Position addresses a slot. Row 0 is the bottom row.
type Position struct {
	Row int `validate:"gte=0,lte=2"`
	Col int `validate:"gte=0,lte=2"`
}

// Center is where the cursor starts.
var Center = Position{Row: 1, Col: 1}

func (p Position) InBounds() bool {
	return p.Row >= BorderMin && p.Row <= BorderMax && p.Col >= BorderMin && p.Col <= BorderMax
}

// Lines lists the winning triples in evaluation order: rows, columns, then both diagonals.
var Lines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// OutcomeKind tags the result of a placement attempt.
type OutcomeKind uint8

const (
	Placed OutcomeKind = iota
	PlacedWithWinner
	OccupiedByHuman
	OccupiedByAutomated
	Rejected
)

func (k OutcomeKind) String() string {
	switch k {
	case Placed:
		return "placed"
	case PlacedWithWinner:
		return "placed_with_winner"
	case OccupiedByHuman:
		return "occupied_by_human"
	case OccupiedByAutomated:
		return "occupied_by_automated"
	default:
		return "rejected"
	}
}

// Outcome is the result of Board.Place. Winner is set only for PlacedWithWinner.
type Outcome struct {
	Kind   OutcomeKind
	Winner Owner
}

// Board is the 3x3 grid, indexed [row][col].
type Board [BoardSize][BoardSize]Slot

// NewBoard returns an empty board with the center slot selected.
func NewBoard() Board {
	var b Board
	b[Center.Row][Center.Col].Selected = true
	return b
}

// At returns the slot at p. p must be in bounds.
func (b *Board) At(p Position) Slot {
	return b[p.Row][p.Col]
}

// Place puts owner's token on p.
//
// A human may only place on the selected slot; the automated player may use
// any empty slot regardless of selection.
func (b *Board) Place(p Position, owner Owner) Outcome {
	if !p.InBounds() || owner == Nobody {
		return Outcome{Kind: Rejected}
	}

	slot := &b[p.Row][p.Col]
	if owner == Human && !slot.Selected {
		return Outcome{Kind: Rejected}
	}

	if occupant, ok := slot.Cell.Occupant(); ok {
		if occupant == Human {
			return Outcome{Kind: OccupiedByHuman}
		}
		return Outcome{Kind: OccupiedByAutomated}
	}

	slot.Cell = Occupied(owner)
	if winner, ok := b.CheckWinner(); ok {
		return Outcome{Kind: PlacedWithWinner, Winner: winner}
	}
	return Outcome{Kind: Placed}
}

// CheckWinner returns the owner of the first complete line in Lines order.
func (b *Board) CheckWinner() (Owner, bool) {
	for _, line := range Lines {
		first, ok := b.At(line[0]).Cell.Occupant()
		if !ok {
			continue
		}
		if b.At(line[1]).Cell == Occupied(first) && b.At(line[2]).Cell == Occupied(first) {
			return first, true
		}
	}
	return Nobody, false
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// EmptyPositions lists empty cells in row-major order.
func (b *Board) EmptyPositions() []Position {
	var empty []Position
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Cell.IsEmpty() {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// Selected returns the position of the highlighted slot.
func (b *Board) Selected() (Position, bool) {
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c].Selected {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}
