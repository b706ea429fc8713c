package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/domain/user_sede"
	jwtSvc "vg-ms-user/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

type FakeUserService struct {
	FindUsersFunc             func(ctx context.Context, f domain.Filter) (domain.Users, error)
	FindUserByIDFunc          func(ctx context.Context, id string) (*domain.User, error)
	CreateUserFunc            func(ctx context.Context, u domain.User) (*domain.User, error)
	CreateUsersBatchFunc      func(ctx context.Context, us domain.Users) (domain.Users, error)
	UpdateUserFunc            func(ctx context.Context, id string, p domain.Patch) (*domain.User, error)
	ActivateUserFunc          func(ctx context.Context, id string) (*domain.User, error)
	DeactivateUserFunc        func(ctx context.Context, id string) (*domain.User, error)
	GetActiveRoleByUserIDFunc func(ctx context.Context, id string) (domain.Role, bool, error)
	AddPermissionFunc         func(ctx context.Context, id string, p domain.Permission) (*domain.User, error)
	AddPermissionsFunc        func(ctx context.Context, id string, ps domain.Permissions) (*domain.User, error)
	RemovePermissionFunc      func(ctx context.Context, id string, p domain.Permission) (*domain.User, error)
	SetPermissionsFunc        func(ctx context.Context, id string, ps domain.Permissions) (*domain.User, error)
	MigrateFunc               func(ctx context.Context) (domain.Users, error)
}

var errNotUsed = errors.New("not used")

func (f *FakeUserService) FindUsers(ctx context.Context, flt domain.Filter) (domain.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUsersFunc(ctx, flt)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFunc(ctx, u)
}
func (f *FakeUserService) CreateUsersBatch(ctx context.Context, us domain.Users) (domain.Users, error) {
	if f.CreateUsersBatchFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUsersBatchFunc(ctx, us)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, id string, p domain.Patch) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateUserFunc(ctx, id, p)
}
func (f *FakeUserService) ActivateUser(ctx context.Context, id string) (*domain.User, error) {
	if f.ActivateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.ActivateUserFunc(ctx, id)
}
func (f *FakeUserService) DeactivateUser(ctx context.Context, id string) (*domain.User, error) {
	if f.DeactivateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.DeactivateUserFunc(ctx, id)
}
func (f *FakeUserService) GetActiveRoleByUserID(ctx context.Context, id string) (domain.Role, bool, error) {
	if f.GetActiveRoleByUserIDFunc == nil {
		return "", false, errNotUsed
	}
	return f.GetActiveRoleByUserIDFunc(ctx, id)
}
func (f *FakeUserService) AddPermission(ctx context.Context, id string, p domain.Permission) (*domain.User, error) {
	if f.AddPermissionFunc == nil {
		return nil, errNotUsed
	}
	return f.AddPermissionFunc(ctx, id, p)
}
func (f *FakeUserService) AddPermissions(ctx context.Context, id string, ps domain.Permissions) (*domain.User, error) {
	if f.AddPermissionsFunc == nil {
		return nil, errNotUsed
	}
	return f.AddPermissionsFunc(ctx, id, ps)
}
func (f *FakeUserService) RemovePermission(ctx context.Context, id string, p domain.Permission) (*domain.User, error) {
	if f.RemovePermissionFunc == nil {
		return nil, errNotUsed
	}
	return f.RemovePermissionFunc(ctx, id, p)
}
func (f *FakeUserService) SetPermissions(ctx context.Context, id string, ps domain.Permissions) (*domain.User, error) {
	if f.SetPermissionsFunc == nil {
		return nil, errNotUsed
	}
	return f.SetPermissionsFunc(ctx, id, ps)
}
func (f *FakeUserService) MigrateUsersWithDefaultPermissions(ctx context.Context) (domain.Users, error) {
	if f.MigrateFunc == nil {
		return nil, errNotUsed
	}
	return f.MigrateFunc(ctx)
}

type FakeUserSedeService struct {
	FindUserSedesFunc    func(ctx context.Context, status user_sede.Status) (user_sede.UserSedes, error)
	FindUserSedeByIDFunc func(ctx context.Context, id string) (*user_sede.UserSede, error)
	CreateUserSedeFunc   func(ctx context.Context, in user_sede.UserSede) (*user_sede.UserSede, error)
	UpdateUserSedeFunc   func(ctx context.Context, id string, in user_sede.UserSede) (*user_sede.UserSede, error)
	DeleteUserSedeFunc   func(ctx context.Context, id string) error
	ActivateUserSedeFunc func(ctx context.Context, id string) (*user_sede.UserSede, error)
}

func (f *FakeUserSedeService) FindUserSedes(ctx context.Context, status user_sede.Status) (user_sede.UserSedes, error) {
	if f.FindUserSedesFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserSedesFunc(ctx, status)
}
func (f *FakeUserSedeService) FindUserSedeByID(ctx context.Context, id string) (*user_sede.UserSede, error) {
	if f.FindUserSedeByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserSedeByIDFunc(ctx, id)
}
func (f *FakeUserSedeService) CreateUserSede(ctx context.Context, in user_sede.UserSede) (*user_sede.UserSede, error) {
	if f.CreateUserSedeFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserSedeFunc(ctx, in)
}
func (f *FakeUserSedeService) UpdateUserSede(ctx context.Context, id string, in user_sede.UserSede) (*user_sede.UserSede, error) {
	if f.UpdateUserSedeFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateUserSedeFunc(ctx, id, in)
}
func (f *FakeUserSedeService) DeleteUserSede(ctx context.Context, id string) error {
	if f.DeleteUserSedeFunc == nil {
		return errNotUsed
	}
	return f.DeleteUserSedeFunc(ctx, id)
}
func (f *FakeUserSedeService) ActivateUserSede(ctx context.Context, id string) (*user_sede.UserSede, error) {
	if f.ActivateUserSedeFunc == nil {
		return nil, errNotUsed
	}
	return f.ActivateUserSedeFunc(ctx, id)
}

func newEngine(t *testing.T) (*gin.Engine, *jwtSvc.Service, *zap.Logger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return gin.New(), jwtSvc.New(testSecret), zap.NewNop()
}

// bearer signs a token carrying the given realm roles.
func bearer(t *testing.T, realmRoles ...string) map[string]string {
	t.Helper()

	tok, err := jwtSvc.New(testSecret).Sign(jwtSvc.Claims{
		PreferredUsername: "jperez",
		Email:             "jperez@example.com",
		GivenName:         "José",
		FamilyName:        "Pérez",
		RealmAccess:       &jwtSvc.Access{Roles: realmRoles},
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   "kc-123",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + tok}
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
