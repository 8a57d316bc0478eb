package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	tokenDomain "clinic-office-api/internal/domain/token"
	userDomain "clinic-office-api/internal/domain/user"
	"clinic-office-api/internal/infrastructure/jwt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Table(t *testing.T) {
	storedUser := &userDomain.User{
		ID:           7,
		Email:        "admin@clinic.test",
		PasswordHash: hashPassword(t, "secret123"),
	}

	tests := []struct {
		name     string
		email    string
		password string
		stored   *userDomain.User
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "admin@clinic.test",
			password: "secret123",
			stored:   storedUser,
		},
		{
			name:     "email is normalized before lookup",
			email:    "  ADMIN@clinic.test ",
			password: "secret123",
			stored:   storedUser,
		},
		{
			name:     "unknown email",
			email:    "nobody@clinic.test",
			password: "secret123",
			stored:   nil,
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@clinic.test",
			password: "wrong-password",
			stored:   storedUser,
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			users := &FakeUserRepository{
				FetchUserByEmailFunc: func(ctx context.Context, email string) (*userDomain.User, error) {
					// the service is expected to normalize before the lookup
					if tt.stored != nil && tt.stored.Email == email {
						return tt.stored, nil
					}
					return nil, nil
				},
			}
			as := NewAuthService(jwt.New("test-secret"), users, &FakeTokenRepository{})

			u, tok, err := as.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				assert.Empty(t, tok)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, storedUser.ID, u.ID)
			require.NotEmpty(t, tok)

			claims, err := jwt.New("test-secret").Verify(tok)
			require.NoError(t, err)
			id, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, uint64(storedUser.ID), id)
		})
	}
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	jwtService := jwt.New("test-secret")
	tok, err := jwtService.Issue(7)
	require.NoError(t, err)
	claims, err := jwtService.Verify(tok)
	require.NoError(t, err)

	var revoked *tokenDomain.RevokedToken
	tokens := &FakeTokenRepository{
		RevokeFunc: func(ctx context.Context, rt tokenDomain.RevokedToken) error {
			revoked = &rt
			return nil
		},
	}
	as := NewAuthService(jwtService, &FakeUserRepository{}, tokens)

	ctx := jwt.NewContext(context.Background(), claims)
	require.NoError(t, as.Logout(ctx))

	require.NotNil(t, revoked, "logout must denylist the token")
	assert.Equal(t, claims.ID, revoked.JTI)
	assert.WithinDuration(t, claims.ExpiresAt.Time, revoked.Exp, time.Second)
}

func TestLogout_NoClaimsIsNoop(t *testing.T) {
	as := NewAuthService(jwt.New("test-secret"), &FakeUserRepository{}, &FakeTokenRepository{})

	// no claims in the context means there is nothing to revoke
	require.NoError(t, as.Logout(context.Background()))
}
