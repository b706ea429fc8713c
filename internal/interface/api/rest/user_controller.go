package rest

import (
	"fmt"
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

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	readers := middleware.RequireRole(jwt.AuthorityAdmin, jwt.AuthorityUser)
	admins := middleware.RequireRole(jwt.AuthorityAdmin)

	r.GET(RouteUsers, auth, readers, uc.GetUsersHandler)
	r.GET(RouteUser, auth, readers, uc.GetUserHandler)
	r.GET(RouteUserActiveRole, auth, readers, uc.GetActiveRoleHandler)
	r.POST(RouteUsers, auth, admins, uc.CreateUserHandler)
	r.POST(RouteUsersBatch, auth, admins, uc.CreateUsersBatchHandler)
	r.PUT(RouteUser, auth, readers, uc.UpdateUserHandler)
	r.PATCH(RouteUserActivate, auth, readers, uc.ActivateUserHandler)
	r.PATCH(RouteUserDeactivate, auth, readers, uc.DeactivateUserHandler)

	r.GET(RouteTeachers, auth, readers, uc.GetTeachersHandler)
	r.GET(RouteTeachersActive, auth, readers, uc.GetActiveTeachersHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	status := c.Query("status")
	if err := validator.ValidateUserStatus(status); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	uc.listUsers(c, domainUser.Filter{
		Role:   domainUser.Role(c.Query("role")),
		Status: domainUser.Status(status),
	})
}

func (uc *UserController) GetTeachersHandler(c *gin.Context) {
	uc.listUsers(c, domainUser.Filter{Role: domainUser.RoleProfesor})
}

func (uc *UserController) GetActiveTeachersHandler(c *gin.Context) {
	uc.listUsers(c, domainUser.Filter{Role: domainUser.RoleProfesor, Status: domainUser.StatusActive})
}

func (uc *UserController) listUsers(c *gin.Context, f domainUser.Filter) {
	users, err := uc.userService.FindUsers(c.Request.Context(), f)
	if err != nil {
		writeError(c, uc.logger, "FindUsers", "failed to get users", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	u, err := uc.userService.FindUserByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, uc.logger, "FindUserByID", "failed to get a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetActiveRoleHandler(c *gin.Context) {
	id := c.Param("user_id")

	role, ok, err := uc.userService.GetActiveRoleByUserID(c.Request.Context(), id)
	if err != nil {
		writeError(c, uc.logger, "GetActiveRoleByUserID", "failed to resolve role", err)
		return
	}
	if !ok {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found or not active with id: " + id},
		)
		return
	}

	c.JSON(http.StatusOK, user.ActiveRole{UserID: id, Role: string(role)})
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainUser(req))
	if err != nil {
		writeError(c, uc.logger, "CreateUser", "failed to create a user", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUsersBatchHandler(c *gin.Context) {
	var reqs user.Requests
	if err := c.ShouldBindJSON(&reqs); err != nil {
		badRequest(c, err.Error())
		return
	}

	details := make(map[string]string)
	for i, req := range reqs {
		for field, msg := range validator.ValidateUser(req) {
			details[fmt.Sprintf("[%d].%s", i, field)] = msg
		}
	}
	if len(details) > 0 {
		badRequest(c, details)
		return
	}

	users, err := uc.userService.CreateUsersBatch(c.Request.Context(), user.ToDomainUsers(reqs))
	if err != nil {
		writeError(c, uc.logger, "CreateUsersBatch", "failed to create users", err)
		return
	}

	c.JSON(http.StatusCreated, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if errs := validator.ValidatePatch(req); errs != nil {
		badRequest(c, errs)
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), c.Param("user_id"), user.ToDomainPatch(req))
	if err != nil {
		writeError(c, uc.logger, "UpdateUser", "failed to update a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) ActivateUserHandler(c *gin.Context) {
	u, err := uc.userService.ActivateUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, uc.logger, "ActivateUser", "failed to activate a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeactivateUserHandler(c *gin.Context) {
	u, err := uc.userService.DeactivateUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, uc.logger, "DeactivateUser", "failed to deactivate a user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
