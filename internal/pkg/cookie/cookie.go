package cookie

import (
	"net/http"
	"time"

	"gleamshop/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
	CartSessionCookieName  = "cart_session"
)

// Cart sessions outlive tokens; abandoned carts are an accepted cost.
const cartSessionMaxAge = 30 * 24 * time.Hour

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(accessExpiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		RefreshTokenCookieName,
		refreshToken,
		int(refreshExpiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AccessTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)

	c.SetCookie(
		RefreshTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// GetOrIssueCartSession returns the request's cart session id, minting and
// setting a new one when the cookie is absent or malformed.
func GetOrIssueCartSession(c *gin.Context, cfg config.CookieConfig) uuid.UUID {
	if raw, err := c.Cookie(CartSessionCookieName); err == nil {
		if id, parseErr := uuid.Parse(raw); parseErr == nil {
			return id
		}
	}

	id := uuid.New()
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		CartSessionCookieName,
		id.String(),
		int(cartSessionMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
