package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/example/parknow/internal/persistence"
)

// AccountStore captures the user storage operations the auth service needs.
type AccountStore interface {
	CreateUser(ctx context.Context, name, email, password string) (persistence.User, error)
	GetUserByEmail(ctx context.Context, email string) (persistence.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (bool, error)
}

// AuthService handles signup, login and session resolution for the flow
// surface. Credentials are stored as argon2id hashes; rows written by legacy
// installations hold plaintext and are verified through the store's
// exact-match accessor instead.
type AuthService struct {
	accounts       AccountStore
	sessions       *sessionCache
	hashPassword   func(password string) (string, error)
	tokenGenerator func() string
	logger         *slog.Logger
}

// NewAuthService wires dependencies for the auth service. A nil
// tokenGenerator or hash function falls back to the package defaults.
func NewAuthService(accounts AccountStore, tokenGenerator func() string, sessionTTL time.Duration, now func() time.Time, logger *slog.Logger) *AuthService {
	if tokenGenerator == nil {
		tokenGenerator = func() string { return "" }
	}
	return &AuthService{
		accounts:       accounts,
		sessions:       newSessionCache(sessionTTL, 0, now),
		hashPassword:   CreatePasswordHash,
		tokenGenerator: tokenGenerator,
		logger:         defaultLogger(logger),
	}
}

func (s *AuthService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AuthService", operation, attrs...)
}

// SignUp validates the form fields and creates the account. A taken email
// surfaces as ErrAlreadyExists.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (identity Identity, err error) {
	if s == nil || s.accounts == nil {
		err = fmt.Errorf("auth service not configured")
		return
	}

	email := normalizeEmail(input.Email)
	logger := s.loggerWith(ctx, "SignUp", "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "signup failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "account created", "user_id", identity.UserID)
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if email == "" {
		vErr.add("email", "email is required")
	} else if _, mailErr := mail.ParseAddress(email); mailErr != nil {
		vErr.add("email", "email is invalid")
	}
	if input.Password == "" {
		vErr.add("password", "password is required")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	credential, err := s.hashPassword(input.Password)
	if err != nil {
		return
	}

	user, err := s.accounts.CreateUser(ctx, strings.TrimSpace(input.Name), email, credential)
	if err != nil {
		if errors.Is(err, persistence.ErrDuplicate) {
			err = ErrAlreadyExists
		}
		return
	}

	identity = Identity{UserID: user.ID, Email: user.Email}
	return
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (session Session, err error) {
	if s == nil || s.accounts == nil {
		err = fmt.Errorf("auth service not configured")
		return
	}

	email = normalizeEmail(email)
	logger := s.loggerWith(ctx, "Login", "email", email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "login failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "login succeeded", "user_id", session.Identity.UserID)
	}()

	if email == "" || password == "" {
		err = ErrInvalidCredentials
		return
	}

	user, err := s.accounts.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrInvalidCredentials
		}
		return
	}

	if isHashedCredential(user.Password) {
		if verr := VerifyPassword(user.Password, password); verr != nil {
			err = ErrInvalidCredentials
			return
		}
	} else {
		// Legacy plaintext row: defer to the store's exact-match check.
		var ok bool
		ok, err = s.accounts.AuthenticateUser(ctx, email, password)
		if err != nil {
			return
		}
		if !ok {
			err = ErrInvalidCredentials
			return
		}
	}

	identity := Identity{UserID: user.ID, Email: user.Email}
	token := s.tokenGenerator()
	if token == "" {
		err = fmt.Errorf("token generator returned empty token")
		return
	}

	expiresAt := s.sessions.Put(token, identity)
	session = Session{Token: token, Identity: identity, ExpiresAt: expiresAt}
	return
}

// Logout revokes a session token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if s == nil {
		return
	}
	s.sessions.Revoke(token)
	s.loggerWith(ctx, "Logout").InfoContext(ctx, "session revoked")
}

// ResolveSession returns the identity behind a live session token. An
// unknown or expired token yields ErrSessionExpired, directing the caller
// back to the authentication entry point.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (Identity, error) {
	if s == nil {
		return Identity{}, fmt.Errorf("auth service not configured")
	}
	if strings.TrimSpace(token) == "" {
		return Identity{}, ErrMissingIdentity
	}
	identity, ok := s.sessions.Resolve(token)
	if !ok {
		return Identity{}, ErrSessionExpired
	}
	return identity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
