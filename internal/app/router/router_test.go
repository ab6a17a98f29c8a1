package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/config"
)

func testConfig() *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Server.Port = 8080
	cfg.Server.Environment = "development"
	cfg.LeadProsper.HTTPTimeout = 10 * time.Second
	cfg.Token.Secret = "test-secret"
	cfg.Otel.ServiceName = "lead-capture"
	return cfg
}

func TestSetupRouterHealthCheckRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig())
	require.NotNil(t, r)

	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Health Check"}`, w.Body.String())
}

func TestSetupRouterLeadRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig())

	routes := map[string]string{}
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = route.Handler
	}

	assert.Contains(t, routes, "POST /api/leads/refinance")
	assert.Contains(t, routes, "POST /api/leads/purchase")
	assert.Contains(t, routes, "GET /api/thankyou/verify")
	assert.Contains(t, routes, "GET /api/health")
}

func TestSetupRouterVerifyWithoutTokenUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig())

	req, _ := http.NewRequest(http.MethodGet, "/api/thankyou/verify", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
