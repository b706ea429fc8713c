package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	domain "vg-ms-user/internal/domain/user"
)

func userDoc(id primitive.ObjectID, role, status string, perms ...string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "userName", Value: "aquispe"},
		{Key: "firstName", Value: "Ana"},
		{Key: "lastName", Value: "Quispe"},
		{Key: "email", Value: "ana@vg.edu.pe"},
		{Key: "role", Value: role},
		{Key: "status", Value: status},
		{Key: "institutionId", Value: "inst-1"},
		{Key: "permissions", Value: bson.A(toAny(perms))},
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + ".users"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			userDoc(id, "DIRECTOR", "ACTIVE", "VIEW", "CREATE")))

		u, err := repo.FindByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, u)
		assert.Equal(mt, id.Hex(), u.ID)
		assert.Equal(mt, domain.RoleDirector, u.Role)
		assert.Equal(mt, domain.Permissions{domain.PermissionCreate, domain.PermissionView}, u.Permissions)
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch))

		u, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Nil(mt, u)
	})

	mt.Run("find by id non hex", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		u, err := repo.FindByID(context.Background(), "not-an-object-id")
		require.NoError(mt, err)
		assert.Nil(mt, u)
	})

	mt.Run("find by role and status", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "PROFESOR", "ACTIVE", "VIEW"),
			userDoc(primitive.NewObjectID(), "PROFESOR", "ACTIVE", "EDIT"),
		))

		us, err := repo.FindByRoleAndStatus(context.Background(), domain.RoleProfesor, domain.StatusActive)
		require.NoError(mt, err)
		assert.Len(mt, us, 2)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		filter := started.Command.Lookup("filter").Document()
		assert.Equal(mt, "PROFESOR", filter.Lookup("role").StringValue())
		assert.Equal(mt, "ACTIVE", filter.Lookup("status").StringValue())
	})

	mt.Run("save assigns id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		in := &domain.User{UserName: "aquispe", Status: domain.StatusActive, Permissions: domain.NewPermissions(domain.PermissionView)}
		out, err := repo.Save(context.Background(), in)
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(out.ID))
		assert.Equal(mt, "aquispe", out.UserName)
		assert.Empty(mt, in.ID)
	})

	mt.Run("save rejects foreign id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		_, err := repo.Save(context.Background(), &domain.User{ID: "123"})
		require.Error(mt, err)
	})

	mt.Run("save all", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 2},
			bson.E{Key: "nModified", Value: 0},
		))

		out, err := repo.SaveAll(context.Background(), domain.Users{{UserName: "a"}, {UserName: "b"}})
		require.NoError(mt, err)
		require.Len(mt, out, 2)
		assert.NotEqual(mt, out[0].ID, out[1].ID)
		assert.Equal(mt, "a", out[0].UserName)
	})

	mt.Run("save all write error", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   1,
			Code:    11000,
			Message: "duplicate key error",
		}))

		out, err := repo.SaveAll(context.Background(), domain.Users{{UserName: "a"}, {UserName: "b"}})
		require.Error(mt, err)
		assert.Nil(mt, out)
	})
}
