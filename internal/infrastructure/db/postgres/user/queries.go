package user

const (
	userColumns = `id, user_name, first_name, last_name, email, phone, document_type, document_number, password, role, status, institution_id, permissions`

	SelectUsers = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at, id
	`
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUsersByStatus = `
		SELECT ` + userColumns + `
		FROM users
		WHERE status = $1
		ORDER BY created_at, id
	`
	SelectUsersByRole = `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1
		ORDER BY created_at, id
	`
	SelectUsersByRoleAndStatus = `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1 AND status = $2
		ORDER BY created_at, id
	`
	UpsertUser = `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE
		SET user_name = EXCLUDED.user_name,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    document_type = EXCLUDED.document_type,
		    document_number = EXCLUDED.document_number,
		    password = EXCLUDED.password,
		    role = EXCLUDED.role,
		    status = EXCLUDED.status,
		    institution_id = EXCLUDED.institution_id,
		    permissions = EXCLUDED.permissions,
		    updated_at = now()
		RETURNING ` + userColumns
)
