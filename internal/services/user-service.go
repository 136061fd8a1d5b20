package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/policyvault/policy-service/internal/domain"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/helper"
	"github.com/policyvault/policy-service/internal/interfaces"
	"github.com/policyvault/policy-service/internal/repository"
)

type UserService interface {
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(email, password string) (*domain.User, string, error)
	ForgotPassword(email string) error
	GetProfile(userID string) (*domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewUserService(repo repository.UserRepository, producer interfaces.ProducerHandler, auth helper.Auth) UserService {
	return &userService{
		repo:     repo,
		auth:     auth,
		producer: producer,
	}
}

func (u *userService) Register(input dto.RegisterRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	if existing, err := u.repo.FindUserByEmail(email); err == nil && existing != nil {
		return nil, repository.ErrDuplicateEmail
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.CreateUser(&domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	u.publishRegistered(user)

	return user, nil
}

func (u *userService) Login(email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := u.repo.FindUserByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !helper.ComparePassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ForgotPassword never reveals whether the account exists; the outcome is the
// same generic acknowledgement either way.
func (u *userService) ForgotPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := u.repo.FindUserByEmail(email); err != nil {
		log.Printf("forgot-password for unknown email")
	}
	return nil
}

func (u *userService) GetProfile(userID string) (*domain.User, error) {
	return u.repo.FindUserByID(userID)
}

func (u *userService) publishRegistered(user *domain.User) {
	if u.producer == nil {
		return
	}

	payload, err := json.Marshal(dto.UserRegisteredEvent{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	if err := u.producer.PublishMessage([]byte("user.registered"), payload); err != nil {
		log.Printf("publish user.registered event: %v", err)
	}
}
