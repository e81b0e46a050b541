package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/internal/users"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/security"
)

const (
	minRegisterCarYear = 2010
	maxRegisterCarYear = 2026
)

// RegisterService handles new member onboarding.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
// UserRepoFactory defaults to the gorm-backed users repository.
type RegisterServiceParams struct {
	TxRunner        txRunner
	UserRepoFactory func(tx *gorm.DB) registerUserRepository
	PasswordConfig  config.PasswordConfig
}

type registerService struct {
	tx          txRunner
	userRepo    func(tx *gorm.DB) registerUserRepository
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	repoFactory := params.UserRepoFactory
	if repoFactory == nil {
		repoFactory = func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		}
	}
	return &registerService{
		tx:          params.TxRunner,
		userRepo:    repoFactory,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	req.Email = email

	carModel, err := validateRegistration(req)
	if err != nil {
		return nil, err
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *models.User
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := s.userRepo(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		if req.Phone != nil {
			if _, err := userRepo.FindByPhone(ctx, *req.Phone); err == nil {
				return pkgerrors.New(pkgerrors.CodeConflict, "phone already registered")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user phone")
			}
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			FullName:     strings.TrimSpace(req.FullName),
			Email:        email,
			Phone:        req.Phone,
			PasswordHash: passwordHash,
			Role:         enums.UserRoleUser,
			City:         req.City,
			CarModel:     carModel,
			CarYear:      req.CarYear,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users.FromModel(created), nil
}

// validateRegistration checks every registration field and reports all
// failures at once. It returns the parsed car model when one was supplied.
func validateRegistration(req RegisterRequest) (*enums.CarModel, error) {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.FullName)) < 2 {
		fields["full_name"] = "must be at least 2 characters"
	}
	if !strings.Contains(req.Email, "@") {
		fields["email"] = "must be a valid email"
	}
	if req.Phone != nil && len(strings.TrimSpace(*req.Phone)) < 10 {
		fields["phone"] = "must be at least 10 digits"
	}
	if msg := passwordPolicyError(req.Password); msg != "" {
		fields["password"] = msg
	}

	var carModel *enums.CarModel
	if req.CarModel != nil {
		parsed, err := enums.ParseCarModel(*req.CarModel)
		if err != nil {
			fields["car_model"] = "must be GT_TSI or GT_TDI"
		} else {
			carModel = &parsed
		}
	}
	if req.CarYear != nil && (*req.CarYear < minRegisterCarYear || *req.CarYear > maxRegisterCarYear) {
		fields["car_year"] = fmt.Sprintf("must be between %d and %d", minRegisterCarYear, maxRegisterCarYear)
	}

	if len(fields) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return carModel, nil
}

func passwordPolicyError(password string) string {
	if len(password) < 8 {
		return "must be at least 8 characters"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "must contain an uppercase letter, a lowercase letter, and a digit"
	}
	return ""
}
