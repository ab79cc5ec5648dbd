package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"barbearia_matheus/internal/domain/entities"
	"barbearia_matheus/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidServiceName     = errors.New("invalid service name")
	ErrInvalidServicePrice    = errors.New("invalid service price")
	ErrInvalidServiceDuration = errors.New("invalid service duration")
)

// IServiceUseCase exposes the service catalog operations.

type IServiceUseCase interface {
	Create(ctx context.Context, name string, price float64, durationMinutes int) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, id, name string, price float64, durationMinutes int) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func validateServiceInput(name string, price float64, durationMinutes int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidServiceName
	}
	if price <= 0 {
		return "", ErrInvalidServicePrice
	}
	if durationMinutes <= 0 {
		return "", ErrInvalidServiceDuration
	}
	return name, nil
}

func (u *ServiceUseCase) Create(ctx context.Context, name string, price float64, durationMinutes int) (entities.Service, error) {
	name, err := validateServiceInput(name, price, durationMinutes)
	if err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:              uuid.NewString(),
		Name:            name,
		Price:           price,
		DurationMinutes: durationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) Update(ctx context.Context, id, name string, price float64, durationMinutes int) (entities.Service, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	name, err = validateServiceInput(name, price, durationMinutes)
	if err != nil {
		return entities.Service{}, err
	}

	current.Name = name
	current.Price = price
	current.DurationMinutes = durationMinutes
	current.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, current)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
