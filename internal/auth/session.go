package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = fmt.Errorf("invalid username or password")

// Claims are the session token claims.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session is an authenticated user with their signed token.
type Session struct {
	User  *model.User
	Token string
}

// permissions maps each role to the areas it can access.
var permissions = map[string][]string{
	model.RoleAdmin:      {"all"},
	model.RoleManager:    {"properties", "tenants", "contracts", "payments", "maintenance", "reports"},
	model.RoleAccountant: {"payments", "reports"},
}

// Service verifies passwords and issues session tokens.
type Service struct {
	store  store.Store
	secret []byte
	ttl    time.Duration
}

// NewService creates an auth service signing tokens with secret, valid
// for ttl.
func NewService(s store.Store, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{
		store:  s,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Login verifies the credentials, stamps the user's last login, and
// returns a session with a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("updating last login: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &Session{User: user, Token: token}, nil
}

// CheckAuth validates a previously issued token and loads its user.
// Returns (nil, nil) when the token is expired, invalid, or the user no
// longer exists.
func (s *Service) CheckAuth(ctx context.Context, tokenStr string) (*model.User, error) {
	if tokenStr == "" {
		return nil, nil
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, nil
	}

	user, err := s.store.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading user for session: %w", err)
	}
	return user, nil
}

// issueToken signs a session token for the user.
func (s *Service) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// HasPermission reports whether the user's role grants access to the
// named area.
func HasPermission(user *model.User, area string) bool {
	if user == nil {
		return false
	}

	for _, granted := range permissions[user.Role] {
		if granted == "all" || granted == area {
			return true
		}
	}
	return false
}
