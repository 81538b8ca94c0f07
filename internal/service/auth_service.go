package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"homefinder/internal/model"
	"homefinder/internal/repository"
	"homefinder/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidProductKey  = errors.New("invalid product key")
)

// SignupParams carries the fields needed to register a new user. ProductKey
// is required when Role is REALTOR or ADMIN.
type SignupParams struct {
	Email      string
	Password   string
	Name       string
	Phone      string
	Role       string
	ProductKey string
}

// AuthService provides authentication related services
type AuthService interface {
	Signup(ctx context.Context, params SignupParams) (*model.User, string, error)
	Signin(ctx context.Context, email, password string) (*model.User, string, error)
	GenerateProductKey(email, role string) (string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	jwtUtil     *utils.JWTUtil
	productKeys *utils.ProductKeyService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, productKeys *utils.ProductKeyService) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtUtil:     jwtUtil,
		productKeys: productKeys,
	}
}

// Signup creates a new user account and returns a signed token for it.
// Elevated roles must present a product key previously issued for exactly
// this email and role.
func (s *authService) Signup(ctx context.Context, params SignupParams) (*model.User, string, error) {
	if params.Role != model.RoleBuyer {
		if params.ProductKey == "" || !s.productKeys.Verify(params.Email, params.Role, params.ProductKey) {
			return nil, "", ErrInvalidProductKey
		}
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(params.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        params.Email,
		Name:         params.Name,
		Phone:        params.Phone,
		PasswordHash: hashedPassword,
		Role:         params.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index can still fire if two signups race past the
		// existence check above.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		log.Printf("ERROR: User %s (ID: %d) created, but failed to generate token: %v", user.Email, user.ID, err)
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Signin authenticates a user and returns a JWT token. Unknown email and
// wrong password fail with the same error so callers cannot enumerate
// accounts.
func (s *authService) Signin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GenerateProductKey issues an invitation key authorizing signup with an
// elevated role. The key is distributed out of band.
func (s *authService) GenerateProductKey(email, role string) (string, error) {
	return s.productKeys.Derive(email, role)
}
