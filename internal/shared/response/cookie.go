package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const RefreshCookieName = "refreshToken"

type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

// SetRefreshCookie delivers the refresh token as an httpOnly cookie.
func SetRefreshCookie(c *gin.Context, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, token, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
}

func ClearRefreshCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, "", -1, "/", "", opts.Secure, true)
}
