package transport

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wahe7/book-slots/config"
	"github.com/wahe7/book-slots/internal/service"
	"github.com/wahe7/book-slots/internal/session"
)

const (
	flashCookie = "flash"
	alertCookie = "alert"
	tzCookie    = "tz"

	adminContextKey = "admin_session"
)

// PageContext is the shared header/alert state every template receives.
type PageContext struct {
	IsAdmin    bool
	AdminName  string
	Flash      string
	Alert      string
	Timezone   string
	AppVersion string
}

// one-shot notification cookies; consumed on the next render

func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

func setAlert(c *gin.Context, msg string) {
	c.SetCookie(alertCookie, msg, 60, "/", "", false, true)
}

func popCookie(c *gin.Context, name string) string {
	val, err := c.Cookie(name)
	if err != nil || val == "" {
		return ""
	}
	c.SetCookie(name, "", -1, "/", "", false, true)
	return val
}

// displayLocation resolves the viewer's timezone: an explicit tz query param
// wins and is remembered in a cookie, then the cookie, then the configured
// fallback, then UTC.
func displayLocation(c *gin.Context, display *config.DisplayConfig) *time.Location {
	name := c.Query("tz")
	if name != "" {
		c.SetCookie(tzCookie, name, int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)
	} else {
		name, _ = c.Cookie(tzCookie)
	}
	return service.ResolveLocation(name, display.Timezone)
}

// withAdminSession resolves the session cookie to a live admin session, if
// any, and stashes it for handlers and templates. The store is consulted on
// every render; an expired session simply vanishes.
func withAdminSession(admins service.AdminService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err == nil && sessionID != "" {
			if sess, err := admins.CurrentSession(c.Request.Context(), sessionID); err == nil {
				c.Set(adminContextKey, sess)
			}
		}
		c.Next()
	}
}

func adminSession(c *gin.Context) *session.Session {
	v, ok := c.Get(adminContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

func pageContext(c *gin.Context, loc *time.Location, appVersion string) PageContext {
	page := PageContext{
		Flash:      popCookie(c, flashCookie),
		Alert:      popCookie(c, alertCookie),
		Timezone:   loc.String(),
		AppVersion: appVersion,
	}
	if sess := adminSession(c); sess != nil {
		page.IsAdmin = true
		page.AdminName = sess.AdminName
		if page.AdminName == "" {
			page.AdminName = sess.AdminEmail
		}
	}
	return page
}
