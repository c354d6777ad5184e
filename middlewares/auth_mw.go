package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Adisheth/car-rental-website/utils"
)

// ContextUser is the gin context key the decoded session claims are
// stored under.
const ContextUser = "currentUser"

// SessionCookie is the cookie name carrying the session token.
const SessionCookie = "token"

// extractToken pulls the session token from the cookie or, failing
// that, from a bearer Authorization header.
func extractToken(c *gin.Context) string {
	if tok, err := c.Cookie(SessionCookie); err == nil && tok != "" {
		return tok
	}
	auth := c.GetHeader("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// AttachUser decodes the session token when present and stores the
// claims in the request context. Absent or invalid tokens are not an
// error here; page handlers render for anonymous visitors.
func AttachUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := extractToken(c); tok != "" {
			if claims, err := utils.ValidateToken(secret, tok); err == nil {
				c.Set(ContextUser, claims)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a verifiable session: 401 when no
// token was sent at all, 403 when one was sent but fails verification.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := utils.ValidateToken(secret, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUser, claims)
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers without the admin flag.
// It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admins only"})
			return
		}
		c.Next()
	}
}

// RequireAdminPage guards the dashboard page. Browsers get a redirect
// home instead of a JSON error.
func RequireAdminPage(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ValidateToken(secret, extractToken(c))
		if err != nil || !claims.IsAdmin {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set(ContextUser, claims)
		c.Next()
	}
}

// CurrentUser returns the decoded claims attached by the middlewares.
func CurrentUser(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
