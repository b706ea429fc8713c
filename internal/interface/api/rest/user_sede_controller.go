package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vg-ms-user/internal/application/ports"
	domainUserSede "vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/jwt"
	"vg-ms-user/internal/interface/api/rest/dto/user_sede"
	"vg-ms-user/internal/interface/api/rest/middleware"
	"vg-ms-user/internal/interface/api/rest/validator"
)

type UserSedeController struct {
	userSedeService ports.UserSedeService
	logger          *zap.Logger
}

func NewUserSedeController(
	r *gin.Engine,
	userSedeService ports.UserSedeService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserSedeController {
	sc := &UserSedeController{
		userSedeService: userSedeService,
		logger:          logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	readers := middleware.RequireRole(jwt.AuthorityAdmin, jwt.AuthorityUser)
	admins := middleware.RequireRole(jwt.AuthorityAdmin)

	r.GET(RouteUserSedes, auth, readers, sc.GetUserSedesHandler)
	r.GET(RouteUserSedesActive, auth, readers, sc.GetActiveUserSedesHandler)
	r.GET(RouteUserSede, auth, readers, sc.GetUserSedeHandler)
	r.POST(RouteUserSedes, auth, admins, sc.CreateUserSedeHandler)
	r.PUT(RouteUserSede, auth, admins, sc.UpdateUserSedeHandler)
	r.DELETE(RouteUserSede, auth, admins, sc.DeleteUserSedeHandler)
	r.PATCH(RouteUserSedeActivate, auth, admins, sc.ActivateUserSedeHandler)

	return sc
}

func (sc *UserSedeController) GetUserSedesHandler(c *gin.Context) {
	status := c.Query("status")
	if err := validator.ValidateUserSedeStatus(status); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	sc.list(c, domainUserSede.Status(status))
}

func (sc *UserSedeController) GetActiveUserSedesHandler(c *gin.Context) {
	sc.list(c, domainUserSede.StatusActive)
}

func (sc *UserSedeController) list(c *gin.Context, status domainUserSede.Status) {
	uss, err := sc.userSedeService.FindUserSedes(c.Request.Context(), status)
	if err != nil {
		writeError(c, sc.logger, "FindUserSedes", "failed to get user sedes", err)
		return
	}

	c.JSON(http.StatusOK, user_sede.ResponseData{
		Data: user_sede.ToResponseUserSedes(uss),
	})
}

func (sc *UserSedeController) GetUserSedeHandler(c *gin.Context) {
	us, err := sc.userSedeService.FindUserSedeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, sc.logger, "FindUserSedeByID", "failed to get a user sede", err)
		return
	}

	c.JSON(http.StatusOK, user_sede.ToResponseUserSede(*us))
}

func (sc *UserSedeController) CreateUserSedeHandler(c *gin.Context) {
	var req user_sede.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateUserSede(req, true); errs != nil {
		badRequest(c, errs)
		return
	}

	us, err := sc.userSedeService.CreateUserSede(c.Request.Context(), user_sede.ToDomainUserSede(req))
	if err != nil {
		writeError(c, sc.logger, "CreateUserSede", "failed to create a user sede", err)
		return
	}

	c.JSON(http.StatusCreated, user_sede.ToResponseUserSede(*us))
}

func (sc *UserSedeController) UpdateUserSedeHandler(c *gin.Context) {
	var req user_sede.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateUserSede(req, false); errs != nil {
		badRequest(c, errs)
		return
	}

	us, err := sc.userSedeService.UpdateUserSede(c.Request.Context(), c.Param("id"), user_sede.ToDomainUserSede(req))
	if err != nil {
		writeError(c, sc.logger, "UpdateUserSede", "failed to update a user sede", err)
		return
	}

	c.JSON(http.StatusOK, user_sede.ToResponseUserSede(*us))
}

func (sc *UserSedeController) DeleteUserSedeHandler(c *gin.Context) {
	if err := sc.userSedeService.DeleteUserSede(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, sc.logger, "DeleteUserSede", "failed to delete a user sede", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (sc *UserSedeController) ActivateUserSedeHandler(c *gin.Context) {
	us, err := sc.userSedeService.ActivateUserSede(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, sc.logger, "ActivateUserSede", "failed to activate a user sede", err)
		return
	}

	c.JSON(http.StatusOK, user_sede.ToResponseUserSede(*us))
}
