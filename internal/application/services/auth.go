package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinic-office-api/internal/application/ports"
	"clinic-office-api/internal/domain/token"
	"clinic-office-api/internal/domain/user"
	"clinic-office-api/internal/infrastructure/jwt"
)

type AuthService struct {
	jwtService     *jwt.Service
	userRepository user.Repository
	revokedTokens  token.Repository
}

func NewAuthService(
	jwtService *jwt.Service,
	userRepository user.Repository,
	revokedTokens token.Repository,
) ports.Auth {
	return &AuthService{
		jwtService:     jwtService,
		userRepository: userRepository,
		revokedTokens:  revokedTokens,
	}
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := as.jwtService.Issue(uint64(u.ID))
	if err != nil {
		return nil, "", ErrFailedToGenerateToken
	}

	return u, tok, nil
}

// Logout puts the presented token on the denylist so it is rejected until it
// would have expired anyway. Without claims in the context there is nothing
// to revoke.
func (as *AuthService) Logout(ctx context.Context) error {
	claims, ok := jwt.FromContext(ctx)
	if !ok || claims.ID == "" {
		return nil
	}

	exp := time.Now().Add(jwt.TokenTTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return as.revokedTokens.Revoke(ctx, token.RevokedToken{JTI: claims.ID, Exp: exp})
}
