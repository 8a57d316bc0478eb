package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"clinic-office-api/internal/application/ports"
	domain "clinic-office-api/internal/domain/user"
	userDB "clinic-office-api/internal/infrastructure/db/postgres/user"
	"clinic-office-api/internal/infrastructure/mq"
	"clinic-office-api/internal/interface/api/graph/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return us.userRepository.FetchUserByID(ctx, id)
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return us.userRepository.FetchUserByEmail(ctx, email)
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	return us.userRepository.FetchUsers(ctx)
}

func (us *UserService) RegisterUser(ctx context.Context, email, password, passwordConfirmation string) (*domain.User, error) {
	email = normalizeEmail(email)
	if errs := validateCredentials(email, password, passwordConfirmation); len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Email:           email,
		PasswordHash:    string(hash),
		Admin:           false,
		Role:            domain.RoleAssistant,
		ThemePreference: domain.ThemeLight,
	})
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			return nil, validationFailed("Email has already been taken")
		}
		return nil, err
	}

	us.publish(mq.ActionCreated, uRet)
	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, upd domain.Update) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	var errs []string

	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		if email == "" {
			errs = append(errs, "Email can't be blank")
		} else if !validEmailFormat(email) {
			errs = append(errs, "Email is invalid")
		}
		u.Email = email
	}
	if upd.Password != nil {
		confirmation := ""
		if upd.PasswordConfirmation != nil {
			confirmation = *upd.PasswordConfirmation
		}
		errs = append(errs, validatePassword(*upd.Password, confirmation)...)

		if len(errs) == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			u.PasswordHash = string(hash)
		}
	}
	if upd.Admin != nil {
		u.Admin = *upd.Admin
	}
	if upd.ThemePreference != nil {
		theme := domain.Theme(*upd.ThemePreference)
		if !theme.Valid() {
			errs = append(errs, "Theme must be 'light' or 'dark'")
		}
		u.ThemePreference = theme
	}

	if len(errs) > 0 {
		return nil, validationFailed(errs...)
	}

	uRet, err := us.userRepository.UpdateUser(ctx, *u)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			return nil, validationFailed("Email has already been taken")
		}
		return nil, err
	}

	us.publish(mq.ActionUpdated, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

// DeleteUser physically removes the row. The self-deletion check lives here,
// not in the resolver, so it holds regardless of call path.
func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	if cu, ok := domain.FromContext(ctx); ok && cu.ID == id {
		return nil, validationFailed("You cannot delete your own account")
	}

	uRet, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, nil
	}

	us.publish(mq.ActionDeleted, uRet)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateThemePreference(ctx context.Context, theme string) (*domain.User, error) {
	cu, ok := domain.FromContext(ctx)
	if !ok {
		return nil, nil
	}

	t := domain.Theme(theme)
	if !t.Valid() {
		return nil, validationFailed("Theme must be 'light' or 'dark'")
	}

	u := *cu
	u.ThemePreference = t

	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("theme_preference_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) publish(action string, u *domain.User) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		Entity:   "user",
		EntityID: strconv.FormatUint(uint64(u.ID), 10),
		Payload:  user.ToResponseUser(*u),
	}
}
