package user_sede

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vg-ms-user/internal/domain/user"
	domain "vg-ms-user/internal/domain/user_sede"
)

var columns = []string{"id", "user_id", "assignment_reason", "observations", "status", "details"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	details := []byte(`[{"sedeId":"hq-1","sortOrder":1,"role":"PROFESOR","schedule":"L-V 8-13","assignedAt":"2025-03-01T00:00:00Z","responsibilities":["tutoria"]},{"sedeId":"hq-2","role":"DIRECTOR"}]`)
	mock.ExpectQuery(SelectUserSedeByID).
		WithArgs("us-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("us-1", "u-1", "traslado", "", "Activo", details))

	us, err := repo.FindByID(context.Background(), "us-1")
	require.NoError(t, err)
	require.NotNil(t, us)
	assert.Equal(t, domain.StatusActive, us.Status)
	require.Len(t, us.Details, 2)

	d := us.Details[0]
	assert.Equal(t, "hq-1", d.SedeID)
	require.NotNil(t, d.SortOrder)
	assert.Equal(t, 1, *d.SortOrder)
	assert.Equal(t, user.RoleProfesor, d.Role)
	require.NotNil(t, d.AssignedAt)
	assert.True(t, d.AssignedAt.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"tutoria"}, d.Responsibilities)
	assert.Equal(t, user.RoleDirector, us.Details[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectUserSedeByID).WithArgs("x").WillReturnError(pgx.ErrNoRows)

	us, err := repo.FindByID(context.Background(), "x")
	require.NoError(t, err)
	assert.Nil(t, us)
}

func TestRepository_FindByID_CorruptDetails(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectUserSedeByID).
		WithArgs("us-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow("us-1", "u-1", "", "", "Activo", []byte(`{`)))

	us, err := repo.FindByID(context.Background(), "us-1")
	require.Error(t, err)
	assert.Nil(t, us)
}

func TestRepository_FindByStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectUserSedesByStatus).
		WithArgs("Inactivo").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("us-1", "u-1", "", "", "Inactivo", []byte(`[]`)).
			AddRow("us-2", "u-2", "", "", "Inactivo", []byte(`[{"sedeId":"hq-1"}]`)))

	out, err := repo.FindByStatus(context.Background(), domain.StatusInactive)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Empty(t, out[0].Details)
	assert.Len(t, out[1].Details, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	in := &domain.UserSede{
		ID:      "us-1",
		UserID:  "u-1",
		Status:  domain.StatusActive,
		Details: domain.Details{{SedeID: "hq-1", Role: user.RoleAuxiliar}},
	}
	stored := []byte(`[{"sedeId":"hq-1","role":"AUXILIAR"}]`)

	mock.ExpectQuery(UpsertUserSede).
		WithArgs("us-1", "u-1", "", "", "Activo", stored).
		WillReturnRows(pgxmock.NewRows(columns).AddRow("us-1", "u-1", "", "", "Activo", stored))

	out, err := repo.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "us-1", out.ID)
	assert.Equal(t, domain.Details{{SedeID: "hq-1", Role: user.RoleAuxiliar}}, out.Details)
	assert.NoError(t, mock.ExpectationsWereMet())
}
