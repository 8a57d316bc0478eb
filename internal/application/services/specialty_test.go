package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specialtyDomain "clinic-office-api/internal/domain/specialty"
	specialtyDB "clinic-office-api/internal/infrastructure/db/postgres/specialty"
	"clinic-office-api/internal/infrastructure/mq"
)

func TestCreateSpecialty_NormalizesName(t *testing.T) {
	var created specialtyDomain.Specialty
	specialties := &FakeSpecialtyRepository{
		CreateSpecialtyFunc: func(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error) {
			req.ID = 1
			created = req
			return &req, nil
		},
	}
	fakeMQ := NewFakeMQ()
	svc := NewSpecialtyService(specialties, fakeMQ, testCounter())

	s, err := svc.CreateSpecialty(context.Background(), "  terapia OCUPACIONAL ", nil)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "Terapia Ocupacional", created.Name)
	assert.True(t, created.Active, "new specialties start active")

	events := fakeMQ.Events()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionCreated, events[0].Action)
	assert.Equal(t, "specialty", events[0].Entity)
}

func TestCreateSpecialty_ValidationTable(t *testing.T) {
	longName := make([]byte, 101)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name         string
		input        string
		createErr    error
		wantMessages []string
	}{
		{
			name:         "blank name",
			input:        "   ",
			wantMessages: []string{"Name can't be blank"},
		},
		{
			name:         "too short",
			input:        "x",
			wantMessages: []string{"Name is too short (minimum is 2 characters)"},
		},
		{
			name:         "too long",
			input:        string(longName),
			wantMessages: []string{"Name is too long (maximum is 100 characters)"},
		},
		{
			name:         "duplicate name",
			input:        "Fisioterapia",
			createErr:    specialtyDB.ErrNameAlreadyExists,
			wantMessages: []string{"Name has already been taken"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			specialties := &FakeSpecialtyRepository{
				CreateSpecialtyFunc: func(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error) {
					return nil, tt.createErr
				},
			}
			svc := NewSpecialtyService(specialties, NewFakeMQ(), testCounter())

			s, err := svc.CreateSpecialty(context.Background(), tt.input, nil)
			require.Error(t, err)
			assert.Nil(t, s)

			msgs, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessages, msgs)
		})
	}
}

func TestDeactivateSpecialty_BlockedUntilDetached(t *testing.T) {
	stored := &specialtyDomain.Specialty{ID: 1, Name: "Fisioterapia", Active: true}
	linked := true

	specialties := &FakeSpecialtyRepository{
		FetchSpecialtyByIDFunc: func(ctx context.Context, id specialtyDomain.ID) (*specialtyDomain.Specialty, error) {
			cp := *stored
			return &cp, nil
		},
		HasProfessionalsFunc: func(ctx context.Context, id specialtyDomain.ID) (bool, error) {
			return linked, nil
		},
		UpdateSpecialtyFunc: func(ctx context.Context, req specialtyDomain.Specialty) (*specialtyDomain.Specialty, error) {
			*stored = req
			cp := req
			return &cp, nil
		},
	}
	fakeMQ := NewFakeMQ()
	svc := NewSpecialtyService(specialties, fakeMQ, testCounter())
	ctx := context.Background()

	// with linked professionals the delete is refused
	s, err := svc.DeactivateSpecialty(ctx, 1)
	require.Error(t, err)
	assert.Nil(t, s)

	msgs, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Cannot deactivate a specialty with linked professionals"}, msgs)
	assert.True(t, stored.Active, "a refused delete must not touch the row")

	// detaching the professionals unblocks it
	linked = false
	s, err = svc.DeactivateSpecialty(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.False(t, s.Active)

	// second deactivation is a no-op success
	s, err = svc.DeactivateSpecialty(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.False(t, s.Active)

	events := fakeMQ.Events()
	require.Len(t, events, 1)
	assert.Equal(t, mq.ActionDeleted, events[0].Action)
}

func TestDeactivateSpecialty_NotFound(t *testing.T) {
	specialties := &FakeSpecialtyRepository{
		FetchSpecialtyByIDFunc: func(ctx context.Context, id specialtyDomain.ID) (*specialtyDomain.Specialty, error) {
			return nil, nil
		},
	}
	svc := NewSpecialtyService(specialties, NewFakeMQ(), testCounter())

	s, err := svc.DeactivateSpecialty(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, s)
}
