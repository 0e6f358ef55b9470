package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/apperr"
	"github.com/Crafty4/web1/repository"
	"github.com/Crafty4/web1/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles register/login and profile updates.
type AuthService struct {
	Repo      *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterReq struct {
	Username    string `json:"username" binding:"required,min=3"`
	Password    string `json:"password" binding:"required,min=6"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Register creates a customer account. Usernames are unique.
func (s *AuthService) Register(req *RegisterReq) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperr.ErrValidation)
	}

	count, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username already taken", apperr.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:    username,
		Password:    string(hashed),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Role:        entity.RoleCustomer,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a signed token.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrAuth)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrAuth)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperr.ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

type UpdateProfileReq struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
}

func (s *AuthService) UpdateProfile(userID uint, req *UpdateProfileReq) (*entity.User, error) {
	updates := map[string]any{}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}
