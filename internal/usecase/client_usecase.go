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
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrInvalidCPF          = errors.New("invalid cpf")
	ErrInvalidPhone        = errors.New("invalid phone")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

// Clients with no visit inside this window are flipped to inactive by the
// auto-inactivate routine.
const inactivityCutoff = 45 * 24 * time.Hour

// IClientUseCase exposes client registration and the admin client-base
// operations of the console.

type IClientUseCase interface {
	Register(ctx context.Context, name, cpf, phone, email string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByStatus(ctx context.Context, filter string) ([]entities.Client, error)
	Update(ctx context.Context, id, name, cpf, phone, email string) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	AutoInactivate(ctx context.Context) (int, error)
	Reactivate(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	repo        interfaces.IClientRepository
	attendances interfaces.IAttendanceRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, attendances interfaces.IAttendanceRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, attendances: attendances}
}

// normalizeClientInput validates and normalizes the registration fields.
// CPF and phone are stored as bare digits; email may be empty.
func normalizeClientInput(name, cpf, phone, email string) (string, string, string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", "", ErrInvalidClientName
	}
	cpf = utils.OnlyDigits(cpf)
	if !utils.IsValidCPF(cpf) {
		return "", "", "", "", ErrInvalidCPF
	}
	phone = utils.OnlyDigits(phone)
	if !utils.IsValidPhoneBR(phone) {
		return "", "", "", "", ErrInvalidPhone
	}
	email = utils.NormalizeEmail(email)
	if email != "" && !utils.IsValidEmail(email) {
		return "", "", "", "", ErrInvalidEmail
	}
	return name, cpf, phone, email, nil
}

func (u *ClientUseCase) Register(ctx context.Context, name, cpf, phone, email string) (entities.Client, error) {
	name, cpf, phone, email, err := normalizeClientInput(name, cpf, phone, email)
	if err != nil {
		return entities.Client{}, err
	}

	// Enforce: one registration per CPF.
	if existing, err := u.repo.GetByCPF(ctx, cpf); err != nil {
		return entities.Client{}, err
	} else if existing.ID != "" {
		return entities.Client{}, ErrClientAlreadyExists
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		CPF:       cpf,
		Phone:     phone,
		Email:     email,
		Status:    entities.ClientStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// ListByStatus accepts "all", "active" or "inactive" (the console's filter
// values); "all" and empty list the whole base.
func (u *ClientUseCase) ListByStatus(ctx context.Context, filter string) ([]entities.Client, error) {
	switch filter {
	case "", "all":
		return u.repo.ListByStatus(ctx, "")
	case string(entities.ClientStatusActive), string(entities.ClientStatusInactive):
		return u.repo.ListByStatus(ctx, entities.ClientStatus(filter))
	default:
		return nil, ErrInvalidStatusFilter
	}
}

func (u *ClientUseCase) Update(ctx context.Context, id, name, cpf, phone, email string) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	name, cpf, phone, email, err = normalizeClientInput(name, cpf, phone, email)
	if err != nil {
		return entities.Client{}, err
	}

	// A CPF change must not collide with another registration.
	if cpf != current.CPF {
		if existing, err := u.repo.GetByCPF(ctx, cpf); err != nil {
			return entities.Client{}, err
		} else if existing.ID != "" && existing.ID != current.ID {
			return entities.Client{}, ErrClientAlreadyExists
		}
	}

	current.Name = name
	current.CPF = cpf
	current.Phone = phone
	current.Email = email
	current.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, current)
}

// Delete removes the client record permanently. The console warns before
// calling this; soft removal is the status flip, not this.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// AutoInactivate flips every active client with no visit in the cutoff
// window to inactive and returns how many were affected. Clients that never
// visited are measured from their registration date.
func (u *ClientUseCase) AutoInactivate(ctx context.Context) (int, error) {
	active, err := u.repo.ListByStatus(ctx, entities.ClientStatusActive)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-inactivityCutoff)
	count := 0
	for _, c := range active {
		last := c.LastVisit
		if last.IsZero() {
			last = c.CreatedAt
		}
		if last.After(cutoff) {
			continue
		}
		if _, err := u.repo.UpdateStatus(ctx, c.ID, entities.ClientStatusInactive); err != nil {
			return count, err
		}
		count++
	}
	log.Printf("[client][usecase] auto-inactivate done affected=%d", count)
	return count, nil
}

func (u *ClientUseCase) Reactivate(ctx context.Context, id string) (entities.Client, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Client{}, err
	}
	return u.repo.UpdateStatus(ctx, id, entities.ClientStatusActive)
}
