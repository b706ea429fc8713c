package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth         = RouteApiV1 + "/auth"
	RouteAuthMe       = RouteAuth + "/me"
	RouteAuthUserID   = RouteAuth + "/user-id"
	RouteAuthUsername = RouteAuth + "/username"
	RouteAuthEmail    = RouteAuth + "/email"

	// users
	RouteUsers          = RouteApiV1 + "/users"
	RouteUsersBatch     = RouteUsers + "/batch"
	RouteUser           = RouteUsers + "/:user_id"
	RouteUserActiveRole = RouteUser + "/active-role"
	RouteUserActivate   = RouteUser + "/activate"
	RouteUserDeactivate = RouteUser + "/deactivate"

	RouteTeachers       = RouteApiV1 + "/teachers"
	RouteTeachersActive = RouteTeachers + "/active"

	// permissions
	RoutePermissions        = RouteApiV1 + "/permissions"
	RoutePermissionsUser    = RoutePermissions + "/users/:user_id"
	RoutePermissionsUserOne = RoutePermissionsUser + "/:permission"
	RoutePermissionsMigrate = RoutePermissions + "/migrate"

	// user sedes
	RouteUserSedes        = RouteApiV1 + "/user-sedes"
	RouteUserSedesActive  = RouteUserSedes + "/active"
	RouteUserSede         = RouteUserSedes + "/:id"
	RouteUserSedeActivate = RouteUserSede + "/activate"

	// ops
	RouteHealth       = RouteApiV1 + "/health"
	RouteHealthSecure = RouteHealth + "/secure"
	RouteMetrics      = RouteApiV1 + "/metrics"
)
