package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/repository"
	"github.com/Rrahullkumar/shushiman/internal/utils"

	"github.com/sirupsen/logrus"
)

const (
	OpRegister      = "register"
	OpLogin         = "login"
	OpOwnerRegister = "owner_register"
	OpOwnerLogin    = "owner_login"

	ResultSuccess            = "success"
	ResultConflict           = "conflict"
	ResultInvalidCredentials = "invalid_credentials"
	ResultValidationError    = "validation_error"
	ResultError              = "error"
)

// AttemptRecorder is notified of every authentication attempt outcome.
type AttemptRecorder interface {
	RecordAuthAttempt(operation, result string)
}

type noopRecorder struct{}

func (noopRecorder) RecordAuthAttempt(string, string) {}

// RegisterInput carries a customer sign-up. Role is optional and defaults to customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// RegisterOwnerInput carries a restaurant owner sign-up
type RegisterOwnerInput struct {
	Name           string
	Email          string
	Password       string
	RestaurantName string
}

// AuthResult is returned by every successful register or login
type AuthResult struct {
	User  *model.User
	Token string
}

// AuthService provides authentication related services
type AuthService interface {
	RegisterCustomer(ctx context.Context, in RegisterInput) (*AuthResult, error)
	LoginCustomer(ctx context.Context, email, password string) (*AuthResult, error)
	RegisterOwner(ctx context.Context, in RegisterOwnerInput) (*AuthResult, error)
	LoginOwner(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	log      logrus.FieldLogger
	recorder AttemptRecorder
}

// NewAuthService creates a new AuthService. recorder may be nil.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, log logrus.FieldLogger, recorder AttemptRecorder) AuthService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		log:      log,
		recorder: recorder,
	}
}

// RegisterCustomer creates a new account, a customer unless Role says owner
func (s *authService) RegisterCustomer(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	missing := missingFields(map[string]string{
		"name": in.Name, "email": in.Email, "password": in.Password,
	}, "name", "email", "password")
	if len(missing) > 0 {
		return nil, s.fail(OpRegister, &ValidationError{Fields: missing})
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = model.RoleCustomer
	}
	if !model.IsValidRole(role) {
		return nil, s.fail(OpRegister, &ValidationError{Message: "invalid role: must be customer or owner"})
	}

	user := &model.User{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Role:  role,
	}
	return s.register(ctx, OpRegister, user, in.Password, ErrUserAlreadyExists)
}

// RegisterOwner creates a new restaurant owner account
func (s *authService) RegisterOwner(ctx context.Context, in RegisterOwnerInput) (*AuthResult, error) {
	missing := missingFields(map[string]string{
		"name": in.Name, "email": in.Email, "password": in.Password, "restaurantName": in.RestaurantName,
	}, "name", "email", "password", "restaurantName")
	if len(missing) > 0 {
		return nil, s.fail(OpOwnerRegister, &ValidationError{Fields: missing})
	}

	restaurant := strings.TrimSpace(in.RestaurantName)
	user := &model.User{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Role:           model.RoleOwner,
		RestaurantName: &restaurant,
	}
	return s.register(ctx, OpOwnerRegister, user, in.Password, ErrOwnerAlreadyExists)
}

func (s *authService) register(ctx context.Context, op string, user *model.User, password string, conflict error) (*AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("failed to check existing user: %w", err))
	}
	if existing != nil {
		return nil, s.fail(op, conflict)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, s.fail(op, err)
	}
	user.PasswordHash = hashedPassword

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, s.fail(op, conflict)
		}
		return nil, s.fail(op, fmt.Errorf("failed to create user in repository: %w", err))
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role, user.Name)
	if err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Error("user created, but failed to generate token")
		return nil, s.fail(op, fmt.Errorf("user created, but failed to generate token: %w", err))
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	s.recorder.RecordAuthAttempt(op, ResultSuccess)
	return &AuthResult{User: user, Token: token}, nil
}

// LoginCustomer authenticates any account by email and password
func (s *authService) LoginCustomer(ctx context.Context, email, password string) (*AuthResult, error) {
	return s.login(ctx, OpLogin, email, password, s.userRepo.FindByEmail)
}

// LoginOwner authenticates an account that holds the owner role
func (s *authService) LoginOwner(ctx context.Context, email, password string) (*AuthResult, error) {
	return s.login(ctx, OpOwnerLogin, email, password, func(ctx context.Context, email string) (*model.User, error) {
		return s.userRepo.FindByEmailAndRole(ctx, email, model.RoleOwner)
	})
}

func (s *authService) login(ctx context.Context, op, email, password string, find func(context.Context, string) (*model.User, error)) (*AuthResult, error) {
	if missing := missingFields(map[string]string{"email": email, "password": password}, "email", "password"); len(missing) > 0 {
		return nil, s.fail(op, &ValidationError{Fields: missing})
	}

	user, err := find(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("error finding user by email: %w", err))
	}
	// Unknown account and wrong password must look the same to the caller.
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, s.fail(op, ErrInvalidCredentials)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role, user.Name)
	if err != nil {
		return nil, s.fail(op, fmt.Errorf("failed to generate token: %w", err))
	}

	s.recorder.RecordAuthAttempt(op, ResultSuccess)
	return &AuthResult{User: user, Token: token}, nil
}

// fail records the attempt outcome for err and returns err unchanged.
func (s *authService) fail(op string, err error) error {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.recorder.RecordAuthAttempt(op, ResultValidationError)
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrOwnerAlreadyExists):
		s.recorder.RecordAuthAttempt(op, ResultConflict)
	case errors.Is(err, ErrInvalidCredentials):
		s.log.WithField("operation", op).Warn("failed login attempt")
		s.recorder.RecordAuthAttempt(op, ResultInvalidCredentials)
	default:
		s.log.WithError(err).WithField("operation", op).Error("authentication request failed")
		s.recorder.RecordAuthAttempt(op, ResultError)
	}
	return err
}
