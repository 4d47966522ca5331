package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techstore-admin/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessions map[string]models.User

func (f fakeSessions) Lookup(token string) (models.User, bool) {
	u, ok := f[token]
	return u, ok
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	admin := models.User{ID: "1", Email: "admin@example.com", Role: models.RoleAdmin}
	r := gin.New()
	r.Use(RequireSession(fakeSessions{"good": admin}))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.MustGet(UserKey).(models.User).Email, "token": c.GetString(TokenKey)})
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := serve(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"admin@example.com","token":"good"}`, w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "good"})
		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	for name, header := range map[string]string{
		"missing":      "",
		"unknown":      "Bearer nope",
		"wrong scheme": "Basic good",
		"bare token":   "good",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := serve(r, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Unauthorized")
		})
	}
}

func TestParsePage(t *testing.T) {
	r := gin.New()
	r.GET("/p", ParsePage(), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", c.GetInt(PageKey))
	})

	for query, want := range map[string]string{
		"":          "1",
		"?page=3":   "3",
		"?page=0":   "1",
		"?page=-2":  "1",
		"?page=abc": "1",
		"?page=2.5": "1",
	} {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/p"+query, nil))
		assert.Equal(t, want, w.Body.String(), "query %q", query)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "%s", c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, func() int { return 42 })

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/api/products/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(r, httptest.NewRequest(http.MethodGet, "/api/products/prod-1001", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/products/prod-1002", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/products/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	expected := `
# HELP techstore_catalog_products Number of products in the catalog.
# TYPE techstore_catalog_products gauge
techstore_catalog_products 42
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "techstore_catalog_products"))
}
