package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wahe7/book-slots/config"
	"github.com/wahe7/book-slots/internal/service"
)

type AdminHandler struct {
	admins service.AdminService
	cfg    *config.SessionConfig
}

func NewAdminHandler(admins service.AdminService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		admins: admins,
		cfg:    &cfg.Session,
	}
}

// Login posts the credentials to the backend and, on success, opens the
// server-side session and sets its cookie. Any failure shows the one generic
// message. This gates presentation only; nothing privileged hides behind it.
func (h *AdminHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	sess, err := h.admins.Login(c.Request.Context(), email, password)
	if err != nil {
		setAlert(c, "Invalid email or password")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.SetCookie(h.cfg.CookieName, sess.ID, int(h.cfg.TTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout drops the session server-side and clears the cookie.
func (h *AdminHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.cfg.CookieName); err == nil {
		_ = h.admins.Logout(c.Request.Context(), sessionID)
	}
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusSeeOther, "/")
}
