package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"techstore-admin/models"
)

// ErrUnauthorized is returned for unknown credentials.
var ErrUnauthorized = errors.New("invalid credentials")

// maxPasswordLen is the bcrypt input limit; longer passwords never match.
const maxPasswordLen = 72

const tokenFooter = "techstore-admin"

type account struct {
	user models.User
	hash []byte
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithCost sets the bcrypt cost used to hash the built-in passwords.
func WithCost(cost int) Option {
	return func(a *Authenticator) { a.cost = cost }
}

// WithClock replaces time.Now for token issue times.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) { a.now = now }
}

// Authenticator checks credentials against the built-in accounts and keeps the
// list of issued tokens. A token is valid while it is in that list.
type Authenticator struct {
	key      []byte
	log      *zap.Logger
	cost     int
	now      func() time.Time
	accounts map[string]account

	mu     sync.RWMutex
	tokens map[string]models.User
}

// NewAuthenticator hashes the built-in passwords and returns an authenticator
// issuing PASETO v2 local tokens encrypted with key (32 bytes).
func NewAuthenticator(key []byte, logger *zap.Logger, opts ...Option) (*Authenticator, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("token key must be 32 bytes, got %d", len(key))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Authenticator{
		key:      key,
		log:      logger,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
		accounts: make(map[string]account, len(fixedUsers)),
		tokens:   make(map[string]models.User),
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, c := range fixedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), a.cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", c.user.Email, err)
		}
		a.accounts[c.user.Email] = account{user: c.user, hash: hash}
	}
	return a, nil
}

// Login returns a session when email and password match a built-in account.
func (a *Authenticator) Login(email, password string) (models.Session, error) {
	acc, ok := a.accounts[email]
	if !ok || len(password) > maxPasswordLen {
		return models.Session{}, ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return models.Session{}, ErrUnauthorized
	}

	token, err := paseto.NewV2().Encrypt(a.key, paseto.JSONToken{
		Jti:      uuid.NewString(),
		Subject:  acc.user.ID,
		IssuedAt: a.now(),
	}, tokenFooter)
	if err != nil {
		return models.Session{}, fmt.Errorf("issue token: %w", err)
	}

	a.mu.Lock()
	a.tokens[token] = acc.user
	a.mu.Unlock()

	a.log.Info("user logged in", zap.String("email", email), zap.String("role", string(acc.user.Role)))
	return models.Session{User: acc.user, Token: token}, nil
}

// Lookup returns the user a token was issued to.
func (a *Authenticator) Lookup(token string) (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	user, ok := a.tokens[token]
	return user, ok
}

// Logout forgets the token. Unknown tokens are ignored.
func (a *Authenticator) Logout(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.tokens, token)
}
