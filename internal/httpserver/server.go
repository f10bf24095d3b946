// internal/httpserver/server.go
//
// HTTP wiring for the Hangman JSON API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/options", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/hint, GET /game/state.
//
// Notes:
//   - Each client owns at most one session. The session ID travels in a signed
//     token (cookie or bearer header); starting a new game discards the session
//     the caller's previous token pointed at.
//   - Advisory outcomes (empty input, already guessed, ...) are 200 responses;
//     only transport problems are HTTP errors.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/rudreshark/hangman-game-with-gui/internal/game"
	"github.com/rudreshark/hangman-game-with-gui/internal/pick"
	"github.com/rudreshark/hangman-game-with-gui/internal/store"
	"github.com/rudreshark/hangman-game-with-gui/internal/words"
)

// Options configures a Server.
type Options struct {
	Secret       string        // HMAC key for session tokens
	TTL          time.Duration // token lifetime, default 24h
	ClientOrigin string        // CORS origin, default http://localhost:5173
	SecureCookie bool
	Source       pick.Source // hint randomness for new sessions; nil means crypto/rand
	Logger       *zerolog.Logger
}

// Server bundles router, session store and word bank.
type Server struct {
	r     *chi.Mux
	store store.Store
	bank  *words.Bank
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, bank *words.Bank, opts Options) *Server {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Secret == "" {
		opts.Secret = "dev_secret_change_me"
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &Server{r: chi.NewRouter(), store: st, bank: bank, opts: opts}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(logger))
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman","endpoints":["/health","/options","POST /game/new","POST /game/guess","POST /game/hint","GET /game/state"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/options", s.handleOptions)
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(s.bank.Stats())
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession())
		r.Post("/game/guess", s.handleGuess)
		r.Post("/game/hint", s.handleHint)
		r.Get("/game/state", s.handleState)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (useful for tests and custom http.Server setups).
func (s *Server) Handler() http.Handler { return s.r }

// NewHTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("requestId", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// ------------------------------ GAME ---------------------------------------

type optionsRes struct {
	Tiers       []words.Tier     `json:"tiers"`
	Categories  []words.Category `json:"categories"`
	MaxAttempts int              `json:"maxAttempts"`
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(optionsRes{
		Tiers:       words.Tiers,
		Categories:  words.Categories,
		MaxAttempts: game.MaxAttempts,
	})
}

type newGameReq struct {
	Tier     string `json:"tier"`
	Category string `json:"category"`
}

type newGameRes struct {
	GameID   string         `json:"gameId"`
	Token    string         `json:"token"`
	Tier     words.Tier     `json:"tier"`
	Category words.Category `json:"category"`
	Outcome  game.Outcome   `json:"outcome"`
}

// handleNewGame starts a session for the requested tier/category and hands
// the caller a token for it. Empty fields default to easy/mixed.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	tier, category := words.Easy, words.Mixed
	if req.Tier != "" {
		t, err := words.ParseTier(req.Tier)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_tier")
			return
		}
		tier = t
	}
	if req.Category != "" {
		c, err := words.ParseCategory(req.Category)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_category")
			return
		}
		category = c
	}

	// one live session per client
	if tok := bearerOrCookie(r); tok != "" {
		if sid, err := s.sessionID(tok); err == nil {
			_ = s.store.Delete(r.Context(), sid)
		}
	}

	sess := game.New(s.bank.ChooseWord(tier, category), s.opts.Source)
	if err := s.store.Save(r.Context(), sess); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signToken(sess.ID())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	hlog.FromRequest(r).Debug().Str("gameId", sess.ID()).Str("tier", tier.Key()).
		Str("category", category.Key()).Msg("new game")

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:   sess.ID(),
		Token:    tok,
		Tier:     tier,
		Category: category,
		Outcome:  sess.Snapshot(),
	})
}

type guessReq struct {
	Guess string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.writeOutcome(w, r, sessionFrom(r).SubmitGuess(req.Guess))
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	s.writeOutcome(w, r, sessionFrom(r).RevealHint())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(sessionFrom(r).Snapshot())
}

func (s *Server) writeOutcome(w http.ResponseWriter, r *http.Request, o game.Outcome) {
	ev := hlog.FromRequest(r).Debug().Str("gameId", sessionFrom(r).ID()).Str("status", string(o.Status))
	if !o.Applied() {
		ev = ev.Str("advisory", string(o.Advisory))
	}
	ev.Msg("game action")
	_ = json.NewEncoder(w).Encode(o)
}

// ------------------------------- util --------------------------------------

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// IsClosed reports whether err is the normal result of Shutdown.
func IsClosed(err error) bool { return errors.Is(err, http.ErrServerClosed) }
