package snapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"socialite/internal/core"
	"socialite/pkg/snapi"
)

type staticCookies []*http.Cookie

func (s staticCookies) Cookies() []*http.Cookie { return s }

func newClient(t *testing.T, handler http.Handler, cookies snapi.CookieSource) *snapi.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := &snapi.Client{Config: &core.Config{APIServer: srv.URL}, Cookies: cookies}
	require.NoError(t, c.Init(t.Context()))
	t.Cleanup(func() { c.Shutdown(t.Context()) }) //nolint:errcheck
	return c
}

func respond(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClientRequestsUnderAPIPrefix(t *testing.T) {
	t.Parallel()

	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respond(t, w, map[string]any{"posts_ids": []int64{}})
	})

	c := newClient(t, mux, nil)

	_, err := c.Newsfeed(t.Context())
	require.NoError(t, err)
	require.Equal(t, "/api/v1/newsfeed", gotPath)
}

func TestClientTrimsTrailingSlashInServerURL(t *testing.T) {
	t.Parallel()

	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respond(t, w, core.User{UserID: 1})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := &snapi.Client{Config: &core.Config{APIServer: srv.URL + "/"}}
	require.NoError(t, c.Init(t.Context()))

	_, err := c.GetUser(t.Context(), 1)
	require.NoError(t, err)
	require.Equal(t, "/api/v1/users/1", gotPath)
}

func TestClientAttachesSourceCookies(t *testing.T) {
	t.Parallel()

	var got []*http.Cookie
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		got = r.Cookies()
		respond(t, w, map[string]any{"posts_ids": []int64{}})
	})

	c := newClient(t, mux, staticCookies{{Name: "session_id", Value: "abc"}})

	_, err := c.Newsfeed(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "session_id", got[0].Name)
	require.Equal(t, "abc", got[0].Value)
}

func TestClientSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"message": "not your post"}))
	})

	c := newClient(t, mux, nil)

	_, err := c.GetPost(t.Context(), 7)
	require.ErrorContains(t, err, "403")
	require.ErrorContains(t, err, "not your post")
}

func TestClientErrorWithoutMessageBody(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := newClient(t, mux, nil)

	_, err := c.GetPost(t.Context(), 7)
	require.ErrorContains(t, err, "unexpected status")
}

func TestClientLoginCapturesSetCookies(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users/login", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "fresh", Path: "/"})
		respond(t, w, map[string]any{
			"message": "OK",
			"user":    core.User{UserID: 42, UserName: "pola"},
		})
	})

	c := newClient(t, mux, nil)

	res, err := c.Login(t.Context(), snapi.Credentials{UserName: "pola", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, int64(42), res.User.UserID)
	require.Len(t, res.Cookies, 1)
	require.Equal(t, "fresh", res.Cookies[0].Value)
}

func TestClientCreatePostNormalizesNilImages(t *testing.T) {
	t.Parallel()

	var raw map[string]json.RawMessage
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/posts", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		respond(t, w, map[string]any{"message": "OK"})
	})

	c := newClient(t, mux, nil)

	err := c.CreatePost(t.Context(), snapi.CreatePostRequest{UserID: 42, ContentText: "hi"})
	require.NoError(t, err)

	// The wire contract wants an empty list, never null.
	require.JSONEq(t, "[]", string(raw["content_image_path"]))
}
