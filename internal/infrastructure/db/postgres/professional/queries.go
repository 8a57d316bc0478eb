package professional

const (
	SelectProfessionals = `
		SELECT id, user_id, specialty_id, council_registration, bio, active, created_at, updated_at
		FROM professionals
		WHERE active
		ORDER BY id
	`
	SelectProfessionalsAll = `
		SELECT id, user_id, specialty_id, council_registration, bio, active, created_at, updated_at
		FROM professionals
		ORDER BY id
	`
	SelectProfessionalByID = `
		SELECT id, user_id, specialty_id, council_registration, bio, active, created_at, updated_at
		FROM professionals
		WHERE id = $1
	`
	SelectProfessionalsBySpecialty = `
		SELECT p.id, p.user_id, p.specialty_id, p.council_registration, p.bio, p.active, p.created_at, p.updated_at
		FROM professionals p
		JOIN specialties s ON s.id = p.specialty_id
		WHERE p.active AND lower(s.name) = lower($1)
		ORDER BY p.id
	`
	InsertProfessional = `
		INSERT INTO professionals (user_id, specialty_id, council_registration, bio, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, user_id, specialty_id, council_registration, bio, active, created_at, updated_at
	`
	UpdateProfessionalByID = `
		UPDATE professionals
		SET specialty_id = $1,
		    council_registration = $2,
		    bio = $3,
		    active = $4,
		    updated_at = now()
		WHERE id = $5
		RETURNING
		  id, user_id, specialty_id, council_registration, bio, active, created_at, updated_at
	`
)

// Unique index names, matching the relational schema.
const (
	uniqueUserIndex    = "index_professionals_on_user_id"
	uniqueCouncilIndex = "index_professionals_on_council_registration"
)
