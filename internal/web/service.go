package web

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/decachess/decachess/internal/chess"
	"github.com/decachess/decachess/internal/config"
)

// Service is the thin HTTP front-end over the rules engine. It owns an
// in-memory game registry; each game's board is mutated strictly serially
// under the service mutex, the engine itself does no locking.
type Service struct {
	config *config.Config

	mu    sync.Mutex
	games map[string]*chess.Game
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		games:  make(map[string]*chess.Game),
	}
}

// RegisterRoutes attaches all API routes to the router.
func (s *Service) RegisterRoutes(router *mux.Router, hub *Hub) {
	router.HandleFunc("/api/health", s.HealthHandler).Methods("GET")
	router.HandleFunc("/api/games", s.CreateGameHandler).Methods("POST")
	router.HandleFunc("/api/games/{id}", s.GetGameHandler).Methods("GET")
	router.HandleFunc("/api/games/{id}/moves", s.ListMovesHandler).Methods("GET")
	router.HandleFunc("/api/games/{id}/moves", s.MakeMoveHandler(hub)).Methods("POST")
	router.HandleFunc("/ws", s.WebSocketHandler(hub))
}

func newGameID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// GameState is the plain-data view of one game.
type GameState struct {
	ID            string           `json:"id"`
	Board         string           `json:"board"`
	Turn          string           `json:"turn"`
	HalfmoveClock int              `json:"halfmoveClock"`
	Status        chess.GameStatus `json:"status"`
	Check         bool             `json:"check"`
}

func (s *Service) gameState(id string, g *chess.Game) GameState {
	return GameState{
		ID:            id,
		Board:         g.Board().ASCII(),
		Turn:          g.Turn().String(),
		HalfmoveClock: g.HalfmoveClock(),
		Status:        g.ResultIfOver(),
		Check:         g.Board().IsInCheck(g.Turn()),
	}
}

func (s *Service) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	var game *chess.Game
	if s.config.Board.Layout != "" {
		board := chess.NewBoard(s.config.Board.Height, s.config.Board.Width)
		if err := board.SetupFromLayout(s.config.Board.Layout); err != nil {
			log.Error().Err(err).Msg("Failed to load configured layout")
			http.Error(w, "Invalid configured layout", http.StatusInternalServerError)
			return
		}
		game = chess.NewGame(board, chess.White)
	} else {
		var err error
		game, err = chess.NewDefaultGame()
		if err != nil {
			log.Error().Err(err).Msg("Failed to create game")
			http.Error(w, "Failed to create game", http.StatusInternalServerError)
			return
		}
	}

	id := newGameID()
	s.mu.Lock()
	s.games[id] = game
	s.mu.Unlock()

	log.Info().Str("gameID", id).Msg("Game created")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.gameState(id, game))
}

func (s *Service) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.gameState(id, game))
}

// MoveDescriptor renders one legal move as plain data.
type MoveDescriptor struct {
	From       string `json:"from"`
	To         string `json:"to"`
	DoubleStep bool   `json:"doubleStep,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	PromoteTo  string `json:"promoteTo,omitempty"`
}

// ListMovesHandler returns the side to move's legal moves, optionally
// filtered to one source square via ?square=F2.
func (s *Service) ListMovesHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	square := r.URL.Query().Get("square")

	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	board := game.Board()
	moves := []MoveDescriptor{}
	for _, mv := range board.LegalMovesFor(game.Turn()) {
		from, err := chess.ToDisplay(mv.FromX, mv.FromY, board.Height, board.Width)
		if err != nil {
			continue
		}
		if square != "" && !strings.EqualFold(square, from) {
			continue
		}
		to, err := chess.ToDisplay(mv.ToX, mv.ToY, board.Height, board.Width)
		if err != nil {
			continue
		}
		moves = append(moves, MoveDescriptor{
			From:       from,
			To:         to,
			DoubleStep: mv.DoubleStep,
			EnPassant:  mv.EnPassant,
			PromoteTo:  mv.PromoteTo,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"moves": moves,
		"total": len(moves),
	})
}

type MakeMoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (s *Service) MakeMoveHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req MakeMoveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		game, ok := s.games[id]
		if !ok {
			s.mu.Unlock()
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}

		result, err := game.MakeMove(req.From, req.To, req.Promotion)
		if err != nil {
			s.mu.Unlock()
			if errors.Is(err, chess.ErrIllegalMove) {
				log.Info().Str("gameID", id).Str("from", req.From).Str("to", req.To).Msg("Rejected illegal move")
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error().Err(err).Str("gameID", id).Str("from", req.From).Str("to", req.To).Msg("Failed to make move")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		state := s.gameState(id, game)
		s.mu.Unlock()

		log.Info().Str("gameID", id).Str("move", result.Move).Bool("check", result.Check).Bool("checkmate", result.Checkmate).Msg("Move executed")

		hub.BroadcastGameUpdate(GameUpdate{
			GameID: id,
			Type:   "move",
			Data: map[string]interface{}{
				"result": result,
				"state":  state,
			},
		})
		if result.GameOver {
			hub.BroadcastGameUpdate(GameUpdate{
				GameID: id,
				Type:   "game_end",
				Data:   map[string]interface{}{"status": result.Status},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}
