package chess

// GameStatus is the outward-facing game outcome.
type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusDraw     GameStatus = "draw"
	StatusWhiteWon GameStatus = "white_won"
	StatusBlackWon GameStatus = "black_won"
)

// MoveResult reports what a played move did.
type MoveResult struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Move      string     `json:"move"`
	Capture   bool       `json:"capture"`
	Check     bool       `json:"check"`
	Checkmate bool       `json:"checkmate"`
	Status    GameStatus `json:"status"`
	GameOver  bool       `json:"gameOver"`
}
