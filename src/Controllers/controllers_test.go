package Controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Middlewares"
	"github.com/ChungBound/canvasAnalytics/src/Router"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

// newTestServer wires the same route groups as main, against a fresh
// seeded store with latency disabled.
func newTestServer(t *testing.T) (*gin.Engine, *Services.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Services.SetSimulatedLatency(0)

	store, err := Services.NewSeededStore()
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	r := gin.New()
	r.Use(Middlewares.ErrorMiddleware())

	public := Router.NewCustomRouter(r.Group("/"))
	public.POST("/login", "Login with account credentials", func(c *gin.Context) {
		Login(c, store)
	})

	optionalGroup := r.Group("/")
	optionalGroup.Use(Middlewares.OptionalAuthMiddleware())
	optional := Router.NewCustomRouter(optionalGroup)
	optional.GET("/report/stats", "Get dashboard statistics", func(c *gin.Context) {
		GetDashboardStats(c, store)
	})
	optional.GET("/report/charts", "Get distribution chart data", func(c *gin.Context) {
		GetChartData(c, store)
	})
	optional.GET("/table", "Get topic level of the data table", func(c *gin.Context) {
		GetTopics(c, store)
	})
	optional.GET("/table/item/:id", "Get discussion item details", func(c *gin.Context) {
		GetDiscussionItem(c, store)
	})
	optional.GET("/table/:topicId", "Get posts under a topic", func(c *gin.Context) {
		GetPosts(c, store)
	})
	optional.GET("/table/:topicId/:postId", "Get replies under a post", func(c *gin.Context) {
		GetReplies(c, store)
	})

	protectedGroup := r.Group("/")
	protectedGroup.Use(Middlewares.AuthMiddleware())
	protected := Router.NewCustomRouter(protectedGroup)
	protected.GET("/profile", "Get current account details", func(c *gin.Context) {
		GetProfile(c, store)
	})
	protected.PATCH("/profile", "Update current account details", func(c *gin.Context) {
		UpdateProfile(c, store)
	})
	protected.POST("/refresh", "Refresh the session token", func(c *gin.Context) {
		RefreshSession(c, store)
	})

	adminGroup := r.Group("/")
	adminGroup.Use(Middlewares.AuthMiddleware())
	adminGroup.Use(Middlewares.AdminMiddleware())
	admin := Router.NewCustomRouter(adminGroup)
	admin.GET("/accounts", "List login accounts", func(c *gin.Context) {
		GetLoginAccounts(c, store)
	})
	admin.POST("/accounts", "Create a login account", func(c *gin.Context) {
		CreateLoginAccount(c, store)
	})
	admin.DELETE("/accounts/:id", "Delete a login account", func(c *gin.Context) {
		DeleteLoginAccount(c, store)
	})
	admin.POST("/notifications/:accountId/toggle", "Toggle an email notification", func(c *gin.Context) {
		ToggleEmailNotification(c, store)
	})

	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return body
}

func tokenFor(t *testing.T, user Entities.AuthUser) string {
	t.Helper()
	token, err := TokenForUser(user)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func adminToken(t *testing.T) string {
	return tokenFor(t, Entities.AuthUser{Id: "1", Username: "admin", Email: "admin@university.edu", Role: Entities.RoleAdmin})
}

func userToken(t *testing.T) string {
	return tokenFor(t, Entities.AuthUser{Id: "2", Username: "user", Email: "user@university.edu", Role: Entities.RoleUser})
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/login", "", `{"username":"admin","password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["access_token"] == "" || body["access_token"] == nil {
		t.Fatalf("no access_token in %v", body)
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok || user["role"] != "admin" {
		t.Fatalf("unexpected user payload %v", body["user"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked in login response")
	}
}

func TestLoginRejections(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/login", "", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got status %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Invalid username or password" {
		t.Fatalf("got error %q", got)
	}

	w = doRequest(t, r, http.MethodPost, "/login", "", `{"username":"admin"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: got status %d", w.Code)
	}
}

func TestCorruptTokenStillServesPublicData(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/table", "not-a-jwt", "")
	if w.Code != http.StatusOK {
		t.Fatalf("corrupt token broke the public table: %d %s", w.Code, w.Body.String())
	}
}

func TestTableDrillDown(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/table", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /table: %d", w.Code)
	}
	var topics TableResponse
	if err := json.Unmarshal(w.Body.Bytes(), &topics); err != nil {
		t.Fatalf("decoding table: %v", err)
	}
	if topics.Level != Entities.LevelTopic || topics.Total != 4 {
		t.Fatalf("got level %s total %d", topics.Level, topics.Total)
	}
	if topics.Items[0].NextLink != "/table/"+topics.Items[0].Id {
		t.Fatalf("topic row has nextLink %q", topics.Items[0].NextLink)
	}

	w = doRequest(t, r, http.MethodGet, "/table/1", "", "")
	var posts TableResponse
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decoding posts: %v", err)
	}
	if posts.Level != Entities.LevelPost || posts.Total != 2 {
		t.Fatalf("got level %s total %d under topic 1", posts.Level, posts.Total)
	}

	w = doRequest(t, r, http.MethodGet, "/table/1/2", "", "")
	var replies TableResponse
	if err := json.Unmarshal(w.Body.Bytes(), &replies); err != nil {
		t.Fatalf("decoding replies: %v", err)
	}
	if replies.Level != Entities.LevelReply || replies.Total != 2 {
		t.Fatalf("got level %s total %d under post 2", replies.Level, replies.Total)
	}
	for _, row := range replies.Items {
		if row.NextLink != "" {
			t.Fatalf("reply row carries nextLink %q", row.NextLink)
		}
	}

	w = doRequest(t, r, http.MethodGet, "/table/999", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown topic: got status %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Item not found" {
		t.Fatalf("got error %q", got)
	}
}

func TestTableQueryParams(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/table?sort_field=replyCount&sort_order=asc", "", "")
	var topics TableResponse
	if err := json.Unmarshal(w.Body.Bytes(), &topics); err != nil {
		t.Fatalf("decoding table: %v", err)
	}
	if topics.Items[0].Id != "7" || topics.Items[len(topics.Items)-1].Id != "1" {
		t.Fatalf("replyCount asc gave order %v", func() []string {
			out := []string{}
			for _, row := range topics.Items {
				out = append(out, row.Id)
			}
			return out
		}())
	}

	// A chart selection replaces the field filters entirely.
	w = doRequest(t, r, http.MethodGet, "/table?chart=priority&segment=High+Priority&type=workshop", "", "")
	if err := json.Unmarshal(w.Body.Bytes(), &topics); err != nil {
		t.Fatalf("decoding table: %v", err)
	}
	for _, row := range topics.Items {
		if row.Priority != Entities.PriorityHigh {
			t.Fatalf("chart selection let through priority %s", row.Priority)
		}
	}
	if topics.Total != 3 {
		t.Fatalf("got %d high-priority topics, want 3", topics.Total)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/profile", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d without token", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/profile", userToken(t), "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d with token: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["username"]; got != "user" {
		t.Fatalf("got profile username %v", got)
	}
}

func TestAdminRoutesRejectUserRole(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/accounts", userToken(t), "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("got status %d for user role", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "User does not have access to List login accounts" {
		t.Fatalf("got error %q", got)
	}
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	r, store := newTestServer(t)
	token := adminToken(t)

	w := doRequest(t, r, http.MethodPost, "/accounts", token, `{"username":"ta","password":"pw123456","email":"ta@university.edu"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	if id == "" || created["role"] != "user" {
		t.Fatalf("unexpected created account %v", created)
	}

	w = doRequest(t, r, http.MethodPost, "/accounts", token, `{"username":"ta","password":"other123","email":"ta2@university.edu"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: got status %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "Username already exists" {
		t.Fatalf("got error %q", got)
	}

	w = doRequest(t, r, http.MethodDelete, "/accounts/"+id, token, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", w.Code)
	}
	if _, ok := store.GetAccount(id); ok {
		t.Fatalf("account %s survived delete", id)
	}

	w = doRequest(t, r, http.MethodDelete, "/accounts/"+id, token, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: got status %d", w.Code)
	}
}

func TestToggleNotificationOverHTTP(t *testing.T) {
	r, store := newTestServer(t)
	token := adminToken(t)

	before, _ := store.FindNotificationByAccount("2")
	w := doRequest(t, r, http.MethodPost, "/notifications/2/toggle", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: got status %d", w.Code)
	}
	if got := decodeBody(t, w)["enabled"]; got != !before.Enabled {
		t.Fatalf("toggle returned enabled=%v, want %v", got, !before.Enabled)
	}
}

func TestRefreshReflectsProfileEdit(t *testing.T) {
	r, _ := newTestServer(t)
	token := userToken(t)

	w := doRequest(t, r, http.MethodPatch, "/profile", token, `{"email":"changed@university.edu"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("profile update: got status %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodPost, "/refresh", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: got status %d", w.Code)
	}
	body := decodeBody(t, w)
	user, _ := body["user"].(map[string]interface{})
	if user["email"] != "changed@university.edu" {
		t.Fatalf("refreshed session still carries email %v", user["email"])
	}
	if body["access_token"] == token {
		t.Fatalf("refresh returned the old token")
	}
}
