package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
	"github.com/satyasudipta98-dot/Foodie-we/utils"
)

var (
	ErrMobileRegistered  = errors.New("mobile number already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// AuthService handles signup/login for customers and the admin (the admin
// is just a seeded user with the admin role, not a separate credential pair).
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates a customer. A mobile number already on record is rejected.
func (s *AuthService) Register(name, mobile, password string) (*entity.User, error) {
	mobile = strings.TrimSpace(mobile)

	count, err := s.userRepo.CountByMobile(mobile)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrMobileRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Mobile:   mobile,
		Password: string(hashed),
		Role:     entity.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks mobile + password and issues a JWT carrying the role.
func (s *AuthService) Login(mobile, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByMobile(strings.TrimSpace(mobile))
	if err != nil {
		return "", nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
