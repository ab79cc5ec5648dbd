package usecase

import (
	"context"
	"errors"
	"testing"

	"barbearia_matheus/internal/domain/entities"
	mock_interfaces "barbearia_matheus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		cases := []struct {
			name     string
			svcName  string
			price    float64
			duration int
			want     error
		}{
			{"empty name", "  ", 30, 30, ErrInvalidServiceName},
			{"zero price", "Corte", 0, 30, ErrInvalidServicePrice},
			{"negative price", "Corte", -1, 30, ErrInvalidServicePrice},
			{"zero duration", "Corte", 30, 0, ErrInvalidServiceDuration},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), tc.svcName, tc.price, tc.duration)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Name != "Corte" || s.Price != 35.5 || s.DurationMinutes != 30 {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.Create(context.Background(), " Corte ", 35.5, 30); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-9").Return(entities.Service{}, nil)

		_, err := uc.Update(context.Background(), "s-9", "Corte", 30, 30)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("applies new fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Name: "Corte", Price: 30, DurationMinutes: 30}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Name != "Corte e Barba" || s.Price != 50 || s.DurationMinutes != 45 {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.Update(context.Background(), "s-1", "Corte e Barba", 50, 45); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		if err := uc.Delete(context.Background(), "s-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
