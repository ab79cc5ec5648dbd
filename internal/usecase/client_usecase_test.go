package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"barbearia_matheus/internal/domain/entities"
	mock_interfaces "barbearia_matheus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Register(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		cases := []struct {
			name                        string
			cName, cpf, phone, email    string
			want                        error
		}{
			{"empty name", " ", "11144477735", "81999990000", "", ErrInvalidClientName},
			{"bad cpf checksum", "Ana", "12345678900", "81999990000", "", ErrInvalidCPF},
			{"repeated cpf digits", "Ana", "11111111111", "81999990000", "", ErrInvalidCPF},
			{"short phone", "Ana", "11144477735", "819999", "", ErrInvalidPhone},
			{"bad email", "Ana", "11144477735", "81999990000", "not-an-email", ErrInvalidEmail},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Register(context.Background(), tc.cName, tc.cpf, tc.phone, tc.email)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("duplicate cpf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByCPF(gomock.Any(), "11144477735").Return(entities.Client{ID: "c-1"}, nil)

		_, err := uc.Register(context.Background(), "Ana", "111.444.777-35", "(81) 99999-0000", "")
		if !errors.Is(err, ErrClientAlreadyExists) {
			t.Fatalf("expected ErrClientAlreadyExists, got %v", err)
		}
	})

	t.Run("stores normalized fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByCPF(gomock.Any(), "11144477735").Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.CPF != "11144477735" || c.Phone != "81999990000" || c.Email != "ana@example.com" {
					t.Fatalf("fields not normalized: %+v", c)
				}
				if c.Status != entities.ClientStatusActive {
					t.Fatalf("expected active status, got %s", c.Status)
				}
				return c, nil
			},
		)

		c, err := uc.Register(context.Background(), " Ana ", "111.444.777-35", "(81) 99999-0000", " ANA@Example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Ana" {
			t.Fatalf("expected trimmed name, got %q", c.Name)
		}
	})
}

func TestClientUseCase_ListByStatus(t *testing.T) {
	t.Run("all maps to unfiltered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.ClientStatus("")).Return([]entities.Client{{ID: "c-1"}}, nil)

		clients, err := uc.ListByStatus(context.Background(), "all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(clients) != 1 {
			t.Fatalf("expected 1 client, got %d", len(clients))
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.ListByStatus(context.Background(), "archived")
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	stored := entities.Client{ID: "c-1", Name: "Ana", CPF: "11144477735", Phone: "81999990000"}

	t.Run("cpf collision with another client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)
		repo.EXPECT().GetByCPF(gomock.Any(), "52998224725").Return(entities.Client{ID: "c-2"}, nil)

		_, err := uc.Update(context.Background(), "c-1", "Ana", "529.982.247-25", "81999990000", "")
		if !errors.Is(err, ErrClientAlreadyExists) {
			t.Fatalf("expected ErrClientAlreadyExists, got %v", err)
		}
	})

	t.Run("unchanged cpf skips the collision lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "Ana Paula" {
					t.Fatalf("expected updated name, got %q", c.Name)
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), "c-1", "Ana Paula", "11144477735", "81999990000", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_AutoInactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo, nil)

	now := time.Now().UTC()
	repo.EXPECT().ListByStatus(gomock.Any(), entities.ClientStatusActive).Return([]entities.Client{
		{ID: "fresh", LastVisit: now.Add(-24 * time.Hour)},
		{ID: "lapsed", LastVisit: now.Add(-60 * 24 * time.Hour)},
		{ID: "never-visited-old", CreatedAt: now.Add(-90 * 24 * time.Hour)},
		{ID: "never-visited-new", CreatedAt: now.Add(-2 * 24 * time.Hour)},
	}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "lapsed", entities.ClientStatusInactive).Return(entities.Client{}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "never-visited-old", entities.ClientStatusInactive).Return(entities.Client{}, nil)

	count, err := uc.AutoInactivate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 inactivated, got %d", count)
	}
}

func TestClientUseCase_Reactivate(t *testing.T) {
	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Client{}, nil)

		_, err := uc.Reactivate(context.Background(), "c-9")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("flips status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Status: entities.ClientStatusInactive}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.ClientStatusActive).Return(
			entities.Client{ID: "c-1", Status: entities.ClientStatusActive}, nil)

		c, err := uc.Reactivate(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ClientStatusActive {
			t.Fatalf("unexpected status: %s", c.Status)
		}
	})
}
