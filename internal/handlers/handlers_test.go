package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperhub/internal/api"
	"paperhub/internal/handlers"
	"paperhub/internal/middleware"
	"paperhub/internal/router"
	"paperhub/internal/viewstate"
	"paperhub/internal/widget"
)

const (
	documentJSON = `{"id":1,"title":"Attention Is All You Need","score":10,"user_vote":null,
		"authors":[{"id":1,"first_name":"Ada","last_name":"Lovelace","is_claimed":false}]}`
	threadJSON  = `{"id":2,"title":"Great result","text":"Thread **body**","score":5,"user_vote":null,"comment_count":1}`
	commentJSON = `{"id":3,"text":"Nice paper","score":2,"user_vote":{"id":9,"vote_type":1},"reply_count":1,
		"replies":[{"id":4,"text":"Agreed","score":0,"user_vote":null}]}`
)

// upstream fakes the remote API.
type upstream struct {
	mu        sync.Mutex
	failVotes bool
	votes     []string
	auth      []string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()

	p := r.URL.Path
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost && (strings.HasSuffix(p, "/upvote/") || strings.HasSuffix(p, "/downvote/")) {
		u.votes = append(u.votes, p)
		u.auth = append(u.auth, r.Header.Get("Authorization"))
		if u.failVotes {
			http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
			return
		}
		vt := 1
		if strings.HasSuffix(p, "/downvote/") {
			vt = 2
		}
		fmt.Fprintf(w, `{"id":77,"vote_type":%d}`, vt)
		return
	}

	switch {
	case strings.HasPrefix(p, "/api/paper/404/"):
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
	case strings.HasPrefix(p, "/api/paper/500/"):
		http.Error(w, `{"detail":"oops"}`, http.StatusInternalServerError)
	case r.Method == http.MethodGet && p == "/api/paper/1/":
		fmt.Fprint(w, documentJSON)
	case r.Method == http.MethodGet && p == "/api/paper/1/discussion/":
		fmt.Fprintf(w, `{"count":1,"results":[%s]}`, threadJSON)
	case r.Method == http.MethodGet && p == "/api/paper/1/discussion/2/":
		fmt.Fprint(w, threadJSON)
	case r.Method == http.MethodGet && p == "/api/paper/1/discussion/2/comment/":
		fmt.Fprintf(w, `{"count":1,"results":[%s]}`, commentJSON)
	case r.Method == http.MethodGet && p == "/api/paper/1/discussion/2/comment/3/":
		fmt.Fprint(w, commentJSON)
	case r.Method == http.MethodPost && p == "/api/paper/1/discussion/2/comment/3/reply/":
		fmt.Fprint(w, `{"id":5,"text":"New reply","score":0,"user_vote":null}`)
	case r.Method == http.MethodPatch && p == "/api/paper/1/discussion/2/comment/3/":
		fmt.Fprint(w, `{"id":3,"text":"Edited text","score":2}`)
	case r.Method == http.MethodPatch && p == "/api/paper/1/discussion/2/comment/3/reply/4/":
		fmt.Fprint(w, `{"id":4,"text":"Edited reply","score":0}`)
	default:
		http.NotFound(w, r)
	}
}

func (u *upstream) setFailVotes(v bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failVotes = v
}

func (u *upstream) castVotes() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.votes...)
}

func (u *upstream) voteAuth() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.auth...)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testApp struct {
	engine   *gin.Engine
	upstream *upstream
	cookies  []*http.Cookie
}

func newTestApp(t *testing.T, health map[string]handlers.Pinger) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	up := &upstream{}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second)
	store, err := viewstate.NewMemoryStore(100, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(sessions.Sessions("paperhub_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.LoadViewer(), middleware.SiteContext("development", "https://paperhub.test"))
	tmpl, err := router.LoadTemplates("../../web/templates")
	require.NoError(t, err)
	r.HTMLRender = tmpl
	router.RegisterRoutes(r, router.Deps{
		Backend: client,
		Binder:  widget.NewBinder(client, store),
		Health:  health,
	})
	return &testApp{engine: r, upstream: up}
}

// do sends req as the same browser every time.
func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range a.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	if cs := w.Result().Cookies(); len(cs) > 0 {
		a.cookies = cs
	}
	return w
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return a.do(req)
}

func TestDocumentShow(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.get("/paper/1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Attention Is All You Need")
	assert.Contains(t, body, `<span class="vote-score">10</span>`)
	assert.Contains(t, body, "Great result")
	assert.Contains(t, body, `<span class="vote-score">5</span>`)
	assert.Contains(t, body, "Thread body")
	assert.Contains(t, body, "Bounties open")
	assert.Contains(t, body, `class="unclaimed"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://paperhub.test/paper/1">`)
}

func TestDocumentNotFound(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.get("/paper/404")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "paper not found")
}

func TestDocumentUpstreamFailure(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.get("/paper/500")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "could not load paper")
}

func TestDocumentBadID(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.get("/paper/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteRendersReconciledWidget(t *testing.T) {
	app := newTestApp(t, nil)
	require.Equal(t, http.StatusOK, app.get("/paper/1").Code)

	w := app.post("/vote/thread/up", url.Values{"paper_id": {"1"}, "thread_id": {"2"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<span class="vote-score">6</span>`)
	assert.Contains(t, body, "vote-widget upvoted")
	assert.NotContains(t, body, "<html")
	assert.Equal(t, []string{"/api/paper/1/discussion/2/upvote/"}, app.upstream.castVotes())

	// Props still say "no vote", so the local vote survives a reload
	w = app.get("/paper/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span class="vote-score">6</span>`)

	// Voting the same way again is a no-op
	w = app.post("/vote/thread/up", url.Values{"paper_id": {"1"}, "thread_id": {"2"}})
	assert.Contains(t, w.Body.String(), `<span class="vote-score">6</span>`)
}

func TestVoteWithoutPriorRender(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.post("/vote/comment/down", url.Values{"paper_id": {"1"}, "thread_id": {"2"}, "comment_id": {"3"}})
	require.Equal(t, http.StatusOK, w.Code)
	// The comment was upvoted with score 2; switching costs two points
	assert.Contains(t, w.Body.String(), `<span class="vote-score">0</span>`)
	assert.Contains(t, w.Body.String(), "vote-widget downvoted")
}

func TestVoteFailureKeepsWidget(t *testing.T) {
	app := newTestApp(t, nil)
	app.upstream.setFailVotes(true)
	require.Equal(t, http.StatusOK, app.get("/paper/1").Code)

	w := app.post("/vote/document/up", url.Values{"paper_id": {"1"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span class="vote-score">10</span>`)
	assert.NotContains(t, w.Body.String(), "upvoted")
}

func TestVoteBadRequests(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.post("/vote/bounty/up", url.Values{"paper_id": {"1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.post("/vote/reply/up", url.Values{"paper_id": {"1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, app.upstream.castVotes())
}

func TestThreadShow(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.get("/paper/1/discussion/2")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Great result")
	assert.Contains(t, body, "<strong>body</strong>")
	assert.Contains(t, body, "<p>Nice paper</p>")
	assert.Contains(t, body, "<p>Agreed</p>")
	assert.Contains(t, body, "1 reply")
	assert.Contains(t, body, "vote-widget upvoted")
	assert.Contains(t, body, `hx-post="/paper/1/discussion/2/comment/3/reply"`)
}

func TestReplyIsPrepended(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.post("/paper/1/discussion/2/comment/3/reply", url.Values{"text": {"New reply"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "New reply")
	assert.Less(t, strings.Index(body, "New reply"), strings.Index(body, "Agreed"))
	assert.Contains(t, body, "2 replies")
	assert.Contains(t, body, `id="comment-3"`)
}

func TestReplyRequiresText(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.post("/paper/1/discussion/2/comment/3/reply", url.Values{"text": {"  "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditComment(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.post("/paper/1/discussion/2/comment/3/edit", url.Values{"text": {"Edited text"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<p>Edited text</p>")

	w = app.post("/paper/1/discussion/2/comment/3/edit", url.Values{"text": {"Edited reply"}, "reply_id": {"4"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<p>Edited reply</p>")
	assert.Contains(t, w.Body.String(), `name="reply_id" value="4"`)
}

func TestSessionTokenIsForwarded(t *testing.T) {
	app := newTestApp(t, nil)
	require.Equal(t, http.StatusOK, app.get("/paper/1").Code)

	w := app.post("/session/token", url.Values{"token": {"tok-123"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))

	app.post("/vote/document/up", url.Values{"paper_id": {"1"}})

	require.Equal(t, http.StatusOK, app.post("/session/token", url.Values{"token": {""}}).Code)
	app.post("/vote/document/down", url.Values{"paper_id": {"1"}})

	assert.Equal(t, []string{"Bearer tok-123", ""}, app.upstream.voteAuth())
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, map[string]handlers.Pinger{
		"viewstate": pingerFunc(func(context.Context) error { return nil }),
	})
	w := app.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"viewstate":"ok"}}`, w.Body.String())

	app = newTestApp(t, map[string]handlers.Pinger{
		"viewstate": pingerFunc(func(context.Context) error { return errors.New("down") }),
	})
	w = app.get("/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	app.post("/vote/thread/down", url.Values{"paper_id": {"1"}, "thread_id": {"2"}})
	w := app.get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "paperhub_votes_total")
}
