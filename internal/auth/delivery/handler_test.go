package delivery

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdomain "replypilot-backend/internal/auth/domain"
)

func newSetupRouter(auth *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")

	setUser := func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Set("userEmail", "user@example.com")
	}

	h := NewAuthHandler(auth, 3600)
	r.GET("/setup", setUser, h.SetupPage)
	r.POST("/setup", setUser, h.SetupSubmit)
	return r
}

func TestSetupPageShowsSavedValues(t *testing.T) {
	auth := newStubAuthUsecase()
	auth.account = &authdomain.UserAccount{
		UID:          "user-1",
		Name:         "Alice",
		Manifesto:    "Keep it short.",
		LookbackDays: 3,
	}
	r := newSetupRouter(auth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/setup", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Keep it short.")
	assert.Contains(t, w.Body.String(), `value="3"`)
}

func TestSetupSubmitRedirectsToDashboard(t *testing.T) {
	auth := newStubAuthUsecase()
	r := newSetupRouter(auth)

	form := url.Values{"manifesto": {"Be concise."}, "lookback_duration": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/setup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestSetupSubmitKeepsSavedValuesOnBadInput(t *testing.T) {
	auth := newStubAuthUsecase()
	auth.account = &authdomain.UserAccount{
		UID:          "user-1",
		Name:         "Alice",
		Manifesto:    "Keep it short.",
		LookbackDays: 3,
	}
	r := newSetupRouter(auth)

	// Missing manifesto fails binding; the form must come back populated
	req := httptest.NewRequest(http.MethodPost, "/setup", strings.NewReader(url.Values{}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Keep it short.")
	assert.Contains(t, w.Body.String(), `value="3"`)
}
