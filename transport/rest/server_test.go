package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

func newTestServer(t *testing.T) (*httptest.Server, *suite.Suite) {
	t.Helper()

	_, st := suite.New(t)

	server := httptest.NewServer(New(st.Logger, st.Game).Handler())
	t.Cleanup(server.Close)

	return server, st
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func post(t *testing.T, server *httptest.Server, path string) *http.Response {
	t.Helper()

	resp, err := noRedirectClient().Post(server.URL+path, "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func getState(t *testing.T, server *httptest.Server) view.Page {
	t.Helper()

	resp, err := http.Get(server.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page view.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))

	return page
}

func TestServer_Ping(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Page(t *testing.T) {
	// Given: a game where X has won
	server, st := newTestServer(t)
	st.Play(0, 3, 1, 4, 2)

	// When: the page is requested
	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Then: it shows the title, the status and the jump list
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), view.Title)
	assert.Contains(t, string(body), "winner: X")
	assert.Contains(t, string(body), `action="/cell/8"`)
	assert.Contains(t, string(body), `action="/jump/5"`)
	assert.Contains(t, string(body), "go to move #5")
}

func TestServer_CellClick(t *testing.T) {
	t.Run("Click places a mark and redirects to the page", func(t *testing.T) {
		// Given: a new game
		server, st := newTestServer(t)

		// When: cell 4 is clicked
		resp := post(t, server, "/cell/4")

		// Then: the browser is sent back to the page and X is on cell 4
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		assert.Equal(t, entity.PlayerX, st.Game.CurrentBoard()[4])

		page := getState(t, server)
		assert.Equal(t, "next to move: O", page.Status)
		assert.Equal(t, entity.PlayerX, page.Board.Rows[1][1].Value)
	})

	t.Run("Non numeric cell is rejected", func(t *testing.T) {
		server, st := newTestServer(t)

		resp := post(t, server, "/cell/abc")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, 1, st.Game.HistoryLen())
	})

	t.Run("Out of range cell is ignored", func(t *testing.T) {
		server, st := newTestServer(t)

		resp := post(t, server, "/cell/42")

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, 1, st.Game.HistoryLen())
	})

	t.Run("Wrong method is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp, err := http.Get(server.URL + "/cell/4")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestServer_Jump(t *testing.T) {
	t.Run("Jump then click discards the old future", func(t *testing.T) {
		// Given: a game with three moves
		server, st := newTestServer(t)
		st.Play(0, 4, 8)

		// When: jumping to step 1 and clicking cell 2
		resp := post(t, server, "/jump/1")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

		page := getState(t, server)
		assert.Equal(t, 1, page.Step)
		assert.Len(t, page.Moves, 4)
		assert.True(t, page.Moves[1].Current)

		post(t, server, "/cell/2")

		// Then: the history holds the kept step and one new move
		page = getState(t, server)
		assert.Len(t, page.Moves, 3)
		assert.Equal(t, 2, page.Step)
		assert.Equal(t, entity.PlayerO, page.Board.Rows[0][2].Value)
	})

	t.Run("Non numeric step is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp := post(t, server, "/jump/x")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
