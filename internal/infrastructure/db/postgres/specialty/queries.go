package specialty

const (
	SelectSpecialties = `
		SELECT id, name, description, active, created_at, updated_at
		FROM specialties
		WHERE active
		ORDER BY name ASC
	`
	SelectSpecialtiesAll = `
		SELECT id, name, description, active, created_at, updated_at
		FROM specialties
		ORDER BY name ASC
	`
	SelectSpecialtyByID = `
		SELECT id, name, description, active, created_at, updated_at
		FROM specialties
		WHERE id = $1
	`
	InsertSpecialty = `
		INSERT INTO specialties (name, description, active)
		VALUES ($1, $2, $3)
		RETURNING
		  id, name, description, active, created_at, updated_at
	`
	UpdateSpecialtyByID = `
		UPDATE specialties
		SET name = $1,
		    description = $2,
		    active = $3,
		    updated_at = now()
		WHERE id = $4
		RETURNING
		  id, name, description, active, created_at, updated_at
	`
	ExistsProfessionalsForSpecialty = `
		SELECT EXISTS (SELECT 1 FROM professionals WHERE specialty_id = $1)
	`
)
