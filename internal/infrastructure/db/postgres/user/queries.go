package user

const (
	SelectUsers = `
		SELECT id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
		FROM users
		ORDER BY id
	`
	SelectUserByID = `
		SELECT id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (email, encrypted_password, admin, role, theme_preference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
	`
	UpdateUserByID = `
		UPDATE users
		SET email = $1,
		    encrypted_password = $2,
		    admin = $3,
		    role = $4,
		    theme_preference = $5,
		    updated_at = now()
		WHERE id = $6
		RETURNING
		  id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
	`
	UpdateUserRoleByID = `
		UPDATE users
		SET role = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING
		  id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
	`
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING
		  id, email, encrypted_password, admin, role, theme_preference, created_at, updated_at
	`
)
