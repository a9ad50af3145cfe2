package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"dispatch_service/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const testBusiness = "biz-1"

// newTestRouter returns an engine whose requests already carry the tenant
// context the auth middleware would set.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetBusinessContext(c, testBusiness, "dispatcher-1")
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
