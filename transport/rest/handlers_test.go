package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/spinfour-backend/internal/apperror"
	"github.com/rocketscienceinc/spinfour-backend/internal/entity"
	"github.com/rocketscienceinc/spinfour-backend/internal/spinfour"
	"github.com/rocketscienceinc/spinfour-backend/internal/usecase"
	mockedRest "github.com/rocketscienceinc/spinfour-backend/mocks/rest"
)

const testSession = "6f1c2a7e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"

func newTestRouter(t *testing.T) (*gin.Engine, *mockedRest.MockgameUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	games := mockedRest.NewMockgameUseCase(t)

	return NewRouter(slog.New(slog.DiscardHandler), games), games
}

func serve(router *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	// When: /ping is requested
	rec := serve(router, http.MethodGet, "/ping", "", "")

	// Then: pong
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestCreateSession(t *testing.T) {
	// Given: a use case that hands out a new session
	router, games := newTestRouter(t)
	games.EXPECT().GetOrCreatePlayer(mock.Anything, "").Return(&entity.Player{ID: testSession}, nil).Once()

	// When: a session is requested without a header
	rec := serve(router, http.MethodPost, "/api/sessions", "", "")

	// Then: the session id comes back in body and header
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSession, rec.Header().Get(sessionHeader))
	assert.JSONEq(t, `{"player":{"id":"`+testSession+`"}}`, rec.Body.String())
}

func TestCreateSession_MalformedHeader(t *testing.T) {
	// Given: a use case that hands out a new session
	router, games := newTestRouter(t)
	games.EXPECT().GetOrCreatePlayer(mock.Anything, "").Return(&entity.Player{ID: testSession}, nil).Once()

	// When: a session is requested with a header that is not a session id
	rec := serve(router, http.MethodPost, "/api/sessions", "player-1", "")

	// Then: the header is ignored and a fresh session is handed out
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSession, rec.Header().Get(sessionHeader))
}

func TestGamesRequireSession(t *testing.T) {
	t.Run("Missing header", func(t *testing.T) {
		router, _ := newTestRouter(t)

		// When: a game is requested without a session header
		rec := serve(router, http.MethodPost, "/api/games", "", "")

		// Then: 401
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed session id", func(t *testing.T) {
		// Given: a use case that must not be reached
		router, _ := newTestRouter(t)

		// When: a game is requested with a session id that was never handed out
		rec := serve(router, http.MethodPost, "/api/games", "player-1", "")

		// Then: 401 before any lookup
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNewGame(t *testing.T) {
	// Given: a use case that creates g1
	router, games := newTestRouter(t)
	game := entity.NewGame("g1", testSession, 6, 2)
	games.EXPECT().NewGame(mock.Anything, testSession).Return(&usecase.Result{Game: game}, nil).Once()

	// When: a game is created
	rec := serve(router, http.MethodPost, "/api/games", testSession, "")

	// Then: 201 with the game
	require.Equal(t, http.StatusCreated, rec.Code)

	var result usecase.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "g1", result.Game.ID)
	assert.Equal(t, 6, result.Game.Size)
}

func TestMove(t *testing.T) {
	t.Run("Passes coordinates through", func(t *testing.T) {
		// Given: a use case accepting the move
		router, games := newTestRouter(t)
		game := entity.NewGame("g1", testSession, 6, 2)
		games.EXPECT().MakeMove(mock.Anything, testSession, "g1", 0, 3).
			Return(&usecase.Result{Game: game, Events: []spinfour.Event{{Type: spinfour.EventTurnChanged, Player: 2}}}, nil).
			Once()

		// When: a move is posted
		rec := serve(router, http.MethodPost, "/api/games/g1/move", testSession, `{"row":0,"col":3}`)

		// Then: 200 with the events
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"type":"turn_changed"`)
	})

	t.Run("Missing col", func(t *testing.T) {
		router, _ := newTestRouter(t)

		// When: a move without col is posted
		rec := serve(router, http.MethodPost, "/api/games/g1/move", testSession, `{"row":0}`)

		// Then: 400
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Rejected move", func(t *testing.T) {
		// Given: a use case rejecting the move as occupied
		router, games := newTestRouter(t)
		game := entity.NewGame("g1", testSession, 6, 2)
		games.EXPECT().MakeMove(mock.Anything, testSession, "g1", 5, 0).
			Return(
				&usecase.Result{Game: game, Events: []spinfour.Event{{Type: spinfour.EventMoveRejected, Reason: spinfour.ReasonOccupied}}},
				&spinfour.RejectionError{Reason: spinfour.ReasonOccupied},
			).
			Once()

		// When: the move is posted
		rec := serve(router, http.MethodPost, "/api/games/g1/move", testSession, `{"row":5,"col":0}`)

		// Then: 409 with the reason
		require.Equal(t, http.StatusConflict, rec.Code)

		var body struct {
			Reason spinfour.Reason `json:"reason"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, spinfour.ReasonOccupied, body.Reason)
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "Not your game", err: apperror.ErrNotYourGame, code: http.StatusForbidden},
		{name: "Game not found", err: apperror.ErrGameNotFound, code: http.StatusNotFound},
		{name: "Storage failure", err: errors.New("redis down"), code: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a use case failing with tc.err
			router, games := newTestRouter(t)
			games.EXPECT().GetGame(mock.Anything, testSession, "g1").Return(nil, tc.err).Once()

			// When: the game is fetched
			rec := serve(router, http.MethodGet, "/api/games/g1", testSession, "")

			// Then: the status matches
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestRotateResetInterval(t *testing.T) {
	// Given: a use case accepting everything
	router, games := newTestRouter(t)
	game := entity.NewGame("g1", testSession, 6, 2)
	games.EXPECT().Rotate(mock.Anything, testSession, "g1").Return(&usecase.Result{Game: game}, nil).Once()
	games.EXPECT().Reset(mock.Anything, testSession, "g1").Return(&usecase.Result{Game: game}, nil).Once()
	games.EXPECT().SetRotationInterval(mock.Anything, testSession, "g1", 5).Return(&usecase.Result{Game: game}, nil).Once()

	// When: each endpoint is called
	rotate := serve(router, http.MethodPost, "/api/games/g1/rotate", testSession, "")
	reset := serve(router, http.MethodPost, "/api/games/g1/reset", testSession, "")
	interval := serve(router, http.MethodPut, "/api/games/g1/rotation-interval", testSession, `{"interval":5}`)
	missing := serve(router, http.MethodPut, "/api/games/g1/rotation-interval", testSession, `{}`)

	// Then: all succeed except the request without an interval
	assert.Equal(t, http.StatusOK, rotate.Code)
	assert.Equal(t, http.StatusOK, reset.Code)
	assert.Equal(t, http.StatusOK, interval.Code)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}
