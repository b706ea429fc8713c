package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vg-ms-user/internal/application/ports"
	domainUser "vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/infrastructure/jwt"
	"vg-ms-user/internal/interface/api/rest/dto/user"
	"vg-ms-user/internal/interface/api/rest/middleware"
	"vg-ms-user/internal/interface/api/rest/validator"
)

type PermissionController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewPermissionController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PermissionController {
	pc := &PermissionController{
		userService: userService,
		logger:      logger,
	}

	admins := []gin.HandlerFunc{
		middleware.AuthMiddleware(jwtService),
		middleware.RequireRole(jwt.AuthorityAdmin),
	}

	r.POST(RoutePermissionsUser, append(admins, pc.AddPermissionsHandler)...)
	r.PUT(RoutePermissionsUser, append(admins, pc.SetPermissionsHandler)...)
	r.DELETE(RoutePermissionsUserOne, append(admins, pc.RemovePermissionHandler)...)
	r.POST(RoutePermissionsMigrate, append(admins, pc.MigrateHandler)...)

	return pc
}

// AddPermissionsHandler accepts either a single "permission" or a "permissions" list.
func (pc *PermissionController) AddPermissionsHandler(c *gin.Context) {
	var req user.PermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidatePermissions(req); errs != nil {
		badRequest(c, errs)
		return
	}

	ctx, id := c.Request.Context(), c.Param("user_id")

	var (
		u   *domainUser.User
		err error
	)
	if req.Permissions != nil {
		ps := user.ToDomainPermissions(req.Permissions)
		if req.Permission != "" {
			ps = ps.Union(domainUser.Permission(req.Permission))
		}
		u, err = pc.userService.AddPermissions(ctx, id, ps)
	} else {
		u, err = pc.userService.AddPermission(ctx, id, domainUser.Permission(req.Permission))
	}
	if err != nil {
		writeError(c, pc.logger, "AddPermissions", "failed to add permissions", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (pc *PermissionController) SetPermissionsHandler(c *gin.Context) {
	var req user.PermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Permissions == nil {
		badRequest(c, map[string]string{"permissions": "permissions is required"})
		return
	}
	if errs := validator.ValidatePermissions(req); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := pc.userService.SetPermissions(
		c.Request.Context(),
		c.Param("user_id"),
		user.ToDomainPermissions(req.Permissions),
	)
	if err != nil {
		writeError(c, pc.logger, "SetPermissions", "failed to set permissions", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (pc *PermissionController) RemovePermissionHandler(c *gin.Context) {
	p := c.Param("permission")
	if err := validator.ValidatePermission(p); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	u, err := pc.userService.RemovePermission(c.Request.Context(), c.Param("user_id"), domainUser.Permission(p))
	if err != nil {
		writeError(c, pc.logger, "RemovePermission", "failed to remove permission", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (pc *PermissionController) MigrateHandler(c *gin.Context) {
	users, err := pc.userService.MigrateUsersWithDefaultPermissions(c.Request.Context())
	if err != nil {
		writeError(c, pc.logger, "MigrateUsersWithDefaultPermissions", "failed to migrate permissions", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}
