package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/internal/util"
	"github.com/amitxthedev/Zenox-Dev-Apis/models"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
)

// AuthService registers the admin account, checks credentials and resolves
// the current user from a session token.
type AuthService struct {
	users       repositories.UserStore
	secret      string
	expiryHours int
}

func NewAuthService(users repositories.UserStore, secret string, expiryHours int) *AuthService {
	return &AuthService{users: users, secret: secret, expiryHours: expiryHours}
}

// Register creates a new admin user and returns a session token for it.
func (s *AuthService) Register(name, email, password string) (string, *models.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: please provide all fields", domain.ErrValidation)
	}

	// Fast path only; the unique index on email is the real guarantee and the
	// store reports its violation as a conflict too.
	if _, err := s.users.GetByEmail(email); err == nil {
		return "", nil, fmt.Errorf("%w: user already exists", domain.ErrConflict)
	} else if !domain.IsNotFound(err) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("%w: hash password: %v", domain.ErrDependency, err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := s.users.Create(user); err != nil {
		return "", nil, err
	}

	token, err := util.CreateAccessToken(user, s.secret, s.expiryHours)
	if err != nil {
		return "", nil, fmt.Errorf("%w: sign token: %v", domain.ErrDependency, err)
	}
	return token, user, nil
}

// Login checks the credentials and returns a session token. The failure
// message never reveals whether the email or the password was wrong.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: please provide email and password", domain.ErrValidation)
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrAuthentication)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrAuthentication)
	}

	token, err := util.CreateAccessToken(user, s.secret, s.expiryHours)
	if err != nil {
		return "", nil, fmt.Errorf("%w: sign token: %v", domain.ErrDependency, err)
	}
	return token, user, nil
}

// CurrentUser verifies the token and loads the user it references.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", domain.ErrAuthentication)
	}

	id, err := util.ExtractIDFromToken(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrAuthentication)
	}

	return s.users.GetByID(id)
}
