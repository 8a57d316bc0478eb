package denylist

const (
	InsertRevokedToken = `
		INSERT INTO jwt_denylist (jti, exp)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	ExistsRevokedToken = `
		SELECT EXISTS (SELECT 1 FROM jwt_denylist WHERE jti = $1)
	`
)
