package services

import (
	"database/sql"
	"time"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users    *repos.UserRepo
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthService(users *repos.UserRepo, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Secret: []byte(secret), TokenTTL: ttl}
}

type RegisterInput struct {
	Name     string
	LastName string
	Phone    string
	Email    string
	Password string
}

// Register creates a new seller account. The email must not already be taken.
func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	taken, err := s.Users.EmailTaken(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, alreadyExists("user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		LastName: in.LastName,
		Phone:    in.Phone,
		Email:    in.Email,
		Hash:     string(hash),
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return s.Users.ByID(u.ID)
}

// Authenticate checks credentials and issues a signed trust token.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", notFound("user")
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", ErrBadCreds
	}
	return s.createToken(u)
}

func (s *AuthService) createToken(u *domain.User) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        u.ID,
		"name":      u.Name,
		"last_name": u.LastName,
		"email":     u.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(s.TokenTTL).Unix(),
	})
	return tok.SignedString(s.Secret)
}

// VerifyToken decodes a bearer token back into the caller's claim set.
func (s *AuthService) VerifyToken(raw string) (*domain.Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, ErrNotLoggedIn
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	str := func(k string) string {
		v, _ := mc[k].(string)
		return v
	}
	c := &domain.Claims{ID: str("id"), Name: str("name"), LastName: str("last_name"), Email: str("email")}
	if c.ID == "" {
		return nil, ErrNotLoggedIn
	}
	return c, nil
}
