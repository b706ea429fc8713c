package user_sede

const (
	userSedeColumns = `id, user_id, assignment_reason, observations, status, details`

	SelectUserSedes = `
		SELECT ` + userSedeColumns + `
		FROM users_sedes
		ORDER BY created_at, id
	`
	SelectUserSedeByID = `
		SELECT ` + userSedeColumns + `
		FROM users_sedes
		WHERE id = $1
	`
	SelectUserSedesByStatus = `
		SELECT ` + userSedeColumns + `
		FROM users_sedes
		WHERE status = $1
		ORDER BY created_at, id
	`
	UpsertUserSede = `
		INSERT INTO users_sedes (` + userSedeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET user_id = EXCLUDED.user_id,
		    assignment_reason = EXCLUDED.assignment_reason,
		    observations = EXCLUDED.observations,
		    status = EXCLUDED.status,
		    details = EXCLUDED.details,
		    updated_at = now()
		RETURNING ` + userSedeColumns
)
