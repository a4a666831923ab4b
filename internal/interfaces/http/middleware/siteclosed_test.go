package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zarya/internal/domain/page"
	"zarya/internal/infrastructure/auth"
	"zarya/internal/shared/constants"
	apperrors "zarya/internal/shared/errors"
	"zarya/internal/shared/logger"
)

type stubPageRepository struct {
	settings    *page.SiteSettings
	settingsErr error
}

func (s *stubPageRepository) GetBySlug(ctx context.Context, slug string) (*page.Page, error) {
	return nil, nil
}
func (s *stubPageRepository) ListMenuPages(ctx context.Context) ([]*page.Page, error) {
	return nil, nil
}
func (s *stubPageRepository) FindByID(ctx context.Context, id uint) (*page.Page, error) {
	return nil, nil
}
func (s *stubPageRepository) ListAll(ctx context.Context) ([]*page.Page, error) { return nil, nil }
func (s *stubPageRepository) Save(ctx context.Context, p *page.Page) error      { return nil }
func (s *stubPageRepository) Delete(ctx context.Context, id uint) error         { return nil }
func (s *stubPageRepository) LoadSettings(ctx context.Context) (*page.SiteSettings, error) {
	return s.settings, s.settingsErr
}
func (s *stubPageRepository) SaveSettings(ctx context.Context, settings *page.SiteSettings) error {
	return nil
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...any) {}
func (noopLogger) Infow(msg string, keysAndValues ...any)  {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (noopLogger) Errorw(msg string, keysAndValues ...any) {}
func (noopLogger) With(args ...any) logger.Interface       { return noopLogger{} }

func closedSettings() *page.SiteSettings {
	return &page.SiteSettings{
		ID:            1,
		SiteName:      "Zarya",
		SiteClosed:    true,
		ClosedMessage: "Back soon",
	}
}

// setupGatedRouter wires ResolveSession and SiteClosed the way the
// public route group does.
func setupGatedRouter(jwtService *auth.JWTService, repo page.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ResolveSession(jwtService), SiteClosed(repo, noopLogger{}))
	r.GET("/news", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func sessionCookie(t *testing.T, jwtService *auth.JWTService, userID uint, isStaff bool) *http.Cookie {
	t.Helper()
	token, _, err := jwtService.Generate(userID, "whoever", isStaff)
	require.NoError(t, err)
	return &http.Cookie{Name: constants.SessionCookieName, Value: token}
}

func TestSiteClosed_AnonymousGets503(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	r := setupGatedRouter(jwtService, &stubPageRepository{settings: closedSettings()})

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Back soon")
}

func TestSiteClosed_StaffSessionBypassesGate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	r := setupGatedRouter(jwtService, &stubPageRepository{settings: closedSettings()})

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.AddCookie(sessionCookie(t, jwtService, 1, true))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSiteClosed_CustomerSessionStillGated(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	r := setupGatedRouter(jwtService, &stubPageRepository{settings: closedSettings()})

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.AddCookie(sessionCookie(t, jwtService, 2, false))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSiteClosed_OpenSitePassesThrough(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	settings := closedSettings()
	settings.SiteClosed = false
	r := setupGatedRouter(jwtService, &stubPageRepository{settings: settings})

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSiteClosed_SettingsFailureFailsOpen(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	repo := &stubPageRepository{settingsErr: apperrors.NewInternalError("settings unavailable")}
	r := setupGatedRouter(jwtService, repo)

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
