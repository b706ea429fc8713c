package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vg-ms-user/internal/infrastructure/jwt"
	"vg-ms-user/internal/interface/api/rest/middleware"
)

// AuthController echoes the caller's token claims. Tokens are issued by the
// identity provider, never by this service.
type AuthController struct{}

func NewAuthController(r *gin.Engine, jwtService *jwt.Service) *AuthController {
	ac := &AuthController{}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteAuthMe, auth, ac.MeHandler)
	r.GET(RouteAuthUserID, auth, ac.UserIDHandler)
	r.GET(RouteAuthUsername, auth, ac.UsernameHandler)
	r.GET(RouteAuthEmail, auth, ac.EmailHandler)

	return ac
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	claims, ok := claimsOrAbort(c)
	if !ok {
		return
	}

	var roles any
	if claims.RealmAccess != nil {
		roles = claims.RealmAccess
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":    claims.Subject,
		"username":  claims.PreferredUsername,
		"email":     claims.Email,
		"firstName": claims.GivenName,
		"lastName":  claims.FamilyName,
		"roles":     roles,
	})
}

func (ac *AuthController) UserIDHandler(c *gin.Context) {
	if claims, ok := claimsOrAbort(c); ok {
		c.String(http.StatusOK, claims.Subject)
	}
}

func (ac *AuthController) UsernameHandler(c *gin.Context) {
	if claims, ok := claimsOrAbort(c); ok {
		c.String(http.StatusOK, claims.PreferredUsername)
	}
}

func (ac *AuthController) EmailHandler(c *gin.Context) {
	if claims, ok := claimsOrAbort(c); ok {
		c.String(http.StatusOK, claims.Email)
	}
}

func claimsOrAbort(c *gin.Context) (*jwt.Claims, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			gin.H{"error": "unauthenticated"},
		)
	}
	return claims, ok
}
