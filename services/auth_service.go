package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketplace/entity"
	"marketplace/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uint, role string) (string, error)
}

// UserResponse is the public view of a user; it never carries the password hash.
type UserResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Telefono      string    `json:"telefono"`
	Rol           string    `json:"rol"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

func ToUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		Telefono:      u.Telefono,
		Rol:           u.Rol,
		FechaRegistro: u.CreatedAt,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Nombre   string
	Apellido string
	Telefono string
}

// AuthService handles registration, email availability and login.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(repo *repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: repo,
		tokens:   tokens,
	}
}

// maxPasswordBytes is the most bcrypt will hash.
const maxPasswordBytes = 72

var errPasswordTooLong = &ValidationError{Msg: "password must be at most 72 bytes"}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer account. A taken email fails with a
// ValidationError and nothing is written.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*UserResponse, error) {
	email := normalizeEmail(in.Email)
	if len(in.Password) > maxPasswordBytes {
		return nil, errPasswordTooLong
	}

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ValidationError{Msg: "email already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errPasswordTooLong
	}
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Nombre:   strings.TrimSpace(in.Nombre),
		Apellido: strings.TrimSpace(in.Apellido),
		Telefono: strings.TrimSpace(in.Telefono),
		Rol:      entity.RoleCustomer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Msg: "email already registered"}
		}
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (s *AuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := s.userRepo.CountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, &AuthenticationError{Msg: "invalid credentials"}
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, &AuthenticationError{Msg: "invalid credentials"}
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Rol)
	if err != nil {
		return "", nil, err
	}
	return token, ToUserResponse(user), nil
}
