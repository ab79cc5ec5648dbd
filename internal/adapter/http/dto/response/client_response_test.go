package response

import (
	"testing"
	"time"

	"barbearia_matheus/internal/domain/entities"
)

func TestFromClient_FormatsDocumentAndPhone(t *testing.T) {
	c := entities.Client{
		ID:    "c-1",
		Name:  "Ana",
		CPF:   "11144477735",
		Phone: "81999990000",
	}
	got := FromClient(c)
	if got.CPF != "111.444.777-35" {
		t.Fatalf("expected formatted cpf, got %q", got.CPF)
	}
	if got.Phone != "(81) 99999-0000" {
		t.Fatalf("expected formatted phone, got %q", got.Phone)
	}
	if got.LastVisit != nil {
		t.Fatalf("expected nil last visit for never-visited client")
	}
}

func TestFromClient_LastVisit(t *testing.T) {
	visited := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	got := FromClient(entities.Client{ID: "c-1", LastVisit: visited})
	if got.LastVisit == nil || !got.LastVisit.Equal(visited) {
		t.Fatalf("unexpected last visit: %v", got.LastVisit)
	}
}
