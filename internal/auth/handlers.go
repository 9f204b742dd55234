package auth

import (
	"net/http"

	"staffing-dashboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// LoginTemplate is the name of the login page template
const LoginTemplate = "login.html"

// AuthHandler handles HTTP requests for the access gate
type AuthHandler struct {
	gate         *Gate
	sessions     *SessionService
	secureCookie bool
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(config *AuthConfig, sessions *SessionService) *AuthHandler {
	return &AuthHandler{
		gate:         NewGate(config.Password),
		sessions:     sessions,
		secureCookie: config.SecureCookie,
	}
}

// LoginPage handles GET /login
// @Summary Login page
// @Description Render the password form. An already authenticated session is sent to the dashboard.
// @Tags authentication
// @Produce html
// @Success 200 {string} string "Login page"
// @Success 303 {string} string "Redirect to the dashboard"
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil {
		if _, err := h.sessions.Validate(token); err == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
	}
	c.HTML(http.StatusOK, LoginTemplate, gin.H{"Error": ""})
}

// Login handles POST /login
// @Summary Submit the dashboard password
// @Description Compare the submitted password with the configured secret. On success a session cookie is set.
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param password formData string true "Dashboard password"
// @Success 303 {string} string "Redirect to the dashboard"
// @Failure 401 {string} string "Login page with error message"
// @Failure 500 {object} map[string]interface{} "Failed to issue session"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.WithContext(c)
	password := c.PostForm("password")

	if err := h.gate.Authenticate(password); err != nil {
		log.Warn("Rejected dashboard login")
		c.HTML(http.StatusUnauthorized, LoginTemplate, gin.H{"Error": err.Error()})
		return
	}

	session, token, err := h.sessions.Issue()
	if err != nil {
		log.WithError(err).Error("Failed to issue session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	h.setSessionCookie(c, token, 0)
	log.WithField("session", session.ID).Info("Dashboard session started")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout
// @Summary Log out
// @Description Clear the session cookie
// @Tags authentication
// @Success 303 {string} string "Redirect to the login page"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, LoginPath)
}

// setSessionCookie writes the session cookie. maxAge 0 keeps it for the browser session.
func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, value, maxAge, "/", "", h.secureCookie, true)
}
