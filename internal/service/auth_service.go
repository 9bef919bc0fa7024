package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/model"
	"github.com/rohannso/Quiz-backend/internal/repository"
	"github.com/rohannso/Quiz-backend/internal/validation"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*model.User, string, error)
	Login(req dto.LoginRequest) (*model.User, string, error)
	Logout(key string) error
	Authenticate(key string) (*model.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo}
}

// Register creates an admin-capable user and issues its bearer token.
func (s *authService) Register(req dto.RegisterRequest) (*model.User, string, error) {
	verr := validation.NewError()

	if req.Password != req.PasswordConfirm {
		verr.Add("password", "Passwords must match")
	}

	taken, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, "", fmt.Errorf("checking username uniqueness: %w", err)
	}
	if taken {
		verr.Add("username", "Username already exists")
	}

	taken, err = s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("checking email uniqueness: %w", err)
	}
	if taken {
		verr.Add("email", "Email already exists")
	}

	if verr.HasErrors() {
		return nil, "", verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsStaff:      true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the check-then-insert race; re-check both unique
			// indexes to attribute the violation to the right field.
			return nil, "", s.duplicateFieldError(req)
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	key, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, key, nil
}

// Login authenticates an admin and returns the user's token, creating one
// if no live token exists.
func (s *authService) Login(req dto.LoginRequest) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsStaff {
		return nil, "", ErrAdminOnly
	}

	token, err := s.tokenRepo.FindByUserID(user.ID)
	if err == nil {
		return user, token.Key, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("looking up token: %w", err)
	}

	key, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, key, nil
}

// Logout revokes the presented token. Revocation is immediate: the token
// row is gone and Authenticate will reject the key.
func (s *authService) Logout(key string) error {
	return s.tokenRepo.DeleteByKey(key)
}

// Authenticate resolves a bearer token key to its user.
func (s *authService) Authenticate(key string) (*model.User, error) {
	token, err := s.tokenRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("looking up token: %w", err)
	}
	return &token.User, nil
}

func (s *authService) duplicateFieldError(req dto.RegisterRequest) *validation.Error {
	verr := validation.NewError()
	if taken, err := s.userRepo.ExistsByUsername(req.Username); err == nil && taken {
		verr.Add("username", "Username already exists")
	}
	if taken, err := s.userRepo.ExistsByEmail(req.Email); err == nil && taken {
		verr.Add("email", "Email already exists")
	}
	if !verr.HasErrors() {
		verr.Add("username", "Username already exists")
	}
	return verr
}

func (s *authService) issueToken(userID uint) (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token key: %w", err)
	}
	key := hex.EncodeToString(b)
	if err := s.tokenRepo.Create(&model.AuthToken{Key: key, UserID: userID}); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to persist auth token")
		return "", fmt.Errorf("creating token: %w", err)
	}
	return key, nil
}
