package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vg-ms-user/internal/infrastructure/jwt"
	"vg-ms-user/internal/interface/api/rest/middleware"
)

type HealthController struct {
	service string
	now     func() time.Time
}

func NewHealthController(r *gin.Engine, service string, jwtService *jwt.Service) *HealthController {
	hc := &HealthController{service: service, now: time.Now}

	r.GET(RouteHealth, hc.HealthHandler)
	r.GET(RouteHealthSecure, middleware.AuthMiddleware(jwtService), hc.SecureHealthHandler)

	return hc
}

func (hc *HealthController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hc.body("Microservicio de usuarios funcionando correctamente"))
}

func (hc *HealthController) SecureHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, hc.body("Endpoint seguro - usuario autenticado"))
}

func (hc *HealthController) body(msg string) gin.H {
	return gin.H{
		"status":    "UP",
		"timestamp": hc.now().UTC(),
		"service":   hc.service,
		"message":   msg,
	}
}
