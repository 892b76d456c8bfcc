package tictactoe

import (
	"errors"
	"fmt"
	"hash/fnv"
	"prover/game"
	"strings"
)

var (
	ErrBoardLength = errors.New("board must have 9 cells")
	ErrBoardCell   = errors.New("board cell must be one of '.', 'O', 'X'")
	ErrBoardCounts = errors.New("mark counts cannot arise from alternating play")
)

type Mark int

const (
	EmptyMark Mark = iota
	Nought
	Cross
)

func (m Mark) Opposite() Mark {
	switch m {
	case Nought:
		return Cross
	case Cross:
		return Nought
	}
	return m
}

func (m Mark) Player() game.Player {
	return game.Player(m)
}

func (m Mark) String() string {
	switch m {
	case Nought:
		return "O"
	case Cross:
		return "X"
	}
	return "."
}

const (
	Rows = 3
	Cols = 3
)

// Board represents the 3x3 grid.
type Board [Rows][Cols]Mark

func (b Board) IsFull() bool {
	for _, row := range b {
		for _, mark := range row {
			if mark == EmptyMark {
				return false
			}
		}
	}
	return true
}

var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark that completed a line, or EmptyMark.
func (b Board) Winner() Mark {
	for _, line := range lines {
		m1 := b[line[0][0]][line[0][1]]
		m2 := b[line[1][0]][line[1][1]]
		m3 := b[line[2][0]][line[2][1]]
		if m1 != EmptyMark && m1 == m2 && m2 == m3 {
			return m1
		}
	}
	return EmptyMark
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for _, mark := range row {
			sb.WriteString(mark.String())
		}
	}
	return sb.String()
}

// Move places the mover's mark on an empty cell.
type Move struct {
	Mark Mark
	Row  int
	Col  int
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%d,%d", m.Mark, m.Row, m.Col)
}

// State holds the board and the mark to move. Nought moves first.
type State struct {
	Board Board
	Turn  Mark
}

func NewInitState() State {
	return State{Turn: Nought}
}

// Parse reads a board written row by row, e.g. "OX.O.X...". The side to move
// is inferred from the mark counts.
func Parse(s string) (State, error) {
	s = strings.TrimSpace(s)
	if len(s) != Rows*Cols {
		return State{}, fmt.Errorf("%w: got %d", ErrBoardLength, len(s))
	}

	var state State
	noughts, crosses := 0, 0
	for i, c := range s {
		var mark Mark
		switch c {
		case '.', '-', '_':
			mark = EmptyMark
		case 'O', 'o':
			mark = Nought
			noughts++
		case 'X', 'x':
			mark = Cross
			crosses++
		default:
			return State{}, fmt.Errorf("%w: %q at %d", ErrBoardCell, c, i)
		}
		state.Board[i/Cols][i%Cols] = mark
	}

	switch noughts - crosses {
	case 0:
		state.Turn = Nought
	case 1:
		state.Turn = Cross
	default:
		return State{}, fmt.Errorf("%w: O=%d X=%d", ErrBoardCounts, noughts, crosses)
	}
	return state, nil
}

func (s State) Players() int               { return 2 }
func (s State) IsStochastic() bool         { return false }
func (s State) HasHiddenInformation() bool { return false }
func (s State) IsAlternating() bool        { return true }

func (s State) Mover() game.Player {
	return s.Turn.Player()
}

func (s State) IsTerminal() bool {
	return s.Board.Winner() != EmptyMark || s.Board.IsFull()
}

func (s State) LegalMoves() []game.Move {
	if s.IsTerminal() {
		return nil
	}
	moves := make([]game.Move, 0, Rows*Cols)
	for i, row := range s.Board {
		for j, mark := range row {
			if mark == EmptyMark {
				moves = append(moves, Move{Mark: s.Turn, Row: i, Col: j})
			}
		}
	}
	return moves
}

func (s State) Play(m game.Move) game.State {
	move, ok := m.(Move)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", m))
	}
	if move.Mark != s.Turn {
		panic(fmt.Sprintf("move %s played out of turn", move))
	}
	if move.Row < 0 || move.Row >= Rows || move.Col < 0 || move.Col >= Cols {
		panic(fmt.Sprintf("move %s is off the board", move))
	}
	if s.Board[move.Row][move.Col] != EmptyMark {
		panic(fmt.Sprintf("move %s targets an occupied cell", move))
	}

	next := s
	next.Board[move.Row][move.Col] = move.Mark
	next.Turn = s.Turn.Opposite()
	return next
}

func (s State) Rank(player game.Player) game.Rank {
	winner := s.Board.Winner()
	switch {
	case winner == EmptyMark:
		return 1.5
	case winner.Player() == player:
		return 1
	default:
		return 2
	}
}

func (s State) RankBounds(player game.Player) (game.Rank, game.Rank) {
	return 1, 2
}

func (s State) Hash() game.StateHash {
	h := fnv.New64a()
	h.Write([]byte(s.Board.String()))
	h.Write([]byte(s.Turn.String()))
	return game.StateHash(h.Sum64())
}

func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Board, s.Turn)
}
