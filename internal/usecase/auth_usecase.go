package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase/interfaces"
	"barbearia_matheus/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

const sessionTTL = 12 * time.Hour

// IAuthUseCase covers both login flows of the console:
//   - admin login by username/password, issuing a bearer token
//   - client login by identifier (CPF or phone digits), no password
//
// ValidateToken is what the auth middleware calls on every privileged
// request; an expired session is deleted on sight so the store does not
// accumulate dead tokens.

type IAuthUseCase interface {
	AdminLogin(ctx context.Context, username, password string) (entities.Admin, string, error)
	AdminLogout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (entities.Admin, error)
	ClientLogin(ctx context.Context, identifier string) (entities.Client, error)
}

type AuthUseCase struct {
	admins   interfaces.IAdminRepository
	sessions interfaces.ISessionRepository
	clients  interfaces.IClientRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(admins interfaces.IAdminRepository, sessions interfaces.ISessionRepository, clients interfaces.IClientRepository) *AuthUseCase {
	return &AuthUseCase{admins: admins, sessions: sessions, clients: clients}
}

func (u *AuthUseCase) AdminLogin(ctx context.Context, username, password string) (entities.Admin, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Admin{}, "", ErrInvalidCredentials
	}

	admin, err := u.admins.GetByUsername(ctx, username)
	if err != nil {
		return entities.Admin{}, "", err
	}
	if admin.ID == "" {
		log.Printf("[auth][usecase] admin login failed username=%s reason=unknown-user", username)
		return entities.Admin{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Printf("[auth][usecase] admin login failed username=%s reason=bad-password", username)
		return entities.Admin{}, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := entities.Session{
		Token:     uuid.NewString(),
		AdminID:   admin.ID,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := u.sessions.Put(ctx, session); err != nil {
		return entities.Admin{}, "", err
	}
	log.Printf("[auth][usecase] admin login success username=%s admin_id=%s", username, admin.ID)
	return admin, session.Token, nil
}

func (u *AuthUseCase) AdminLogout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrSessionNotFound
	}
	return u.sessions.Delete(ctx, token)
}

func (u *AuthUseCase) ValidateToken(ctx context.Context, token string) (entities.Admin, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Admin{}, ErrSessionNotFound
	}

	session, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Admin{}, err
	}
	if session.Token == "" {
		return entities.Admin{}, ErrSessionNotFound
	}
	if session.Expired(time.Now().UTC()) {
		_ = u.sessions.Delete(ctx, token)
		return entities.Admin{}, ErrSessionExpired
	}

	admin, err := u.admins.GetByID(ctx, session.AdminID)
	if err != nil {
		return entities.Admin{}, err
	}
	if admin.ID == "" {
		return entities.Admin{}, ErrSessionNotFound
	}
	return admin, nil
}

// ClientLogin resolves a client by CPF when the identifier has 11 digits and
// falls back to phone lookup. Inactive clients may still log in; they are
// reactivated on their next booking, not here.
func (u *AuthUseCase) ClientLogin(ctx context.Context, identifier string) (entities.Client, error) {
	digits := utils.OnlyDigits(identifier)
	if len(digits) != 10 && len(digits) != 11 {
		return entities.Client{}, ErrInvalidIdentifier
	}

	if len(digits) == 11 {
		client, err := u.clients.GetByCPF(ctx, digits)
		if err != nil {
			return entities.Client{}, err
		}
		if client.ID != "" {
			return client, nil
		}
	}

	client, err := u.clients.GetByPhone(ctx, digits)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return client, nil
}
