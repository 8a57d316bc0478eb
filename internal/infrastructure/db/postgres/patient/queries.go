package patient

const (
	SelectPatients = `
		SELECT id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
		FROM patients
		WHERE deleted_at IS NULL
		ORDER BY id
	`
	SelectPatientsWithDeleted = `
		SELECT id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
		FROM patients
		ORDER BY id
	`
	SelectPatientByID = `
		SELECT id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
		FROM patients
		WHERE id = $1
	`
	InsertPatient = `
		INSERT INTO patients (first_name, last_name, birthdate, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
	`
	UpdatePatientByID = `
		UPDATE patients
		SET first_name = $1,
		    last_name = $2,
		    birthdate = $3,
		    email = $4,
		    phone = $5,
		    updated_at = now()
		WHERE id = $6 AND deleted_at IS NULL
		RETURNING
		  id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
	`
	SoftDeletePatientByID = `
		UPDATE patients
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING
		  id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
	`
	RestorePatientByID = `
		UPDATE patients
		SET deleted_at = NULL,
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING
		  id, first_name, last_name, birthdate, email, phone, created_at, updated_at, deleted_at
	`
)
