package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         "David Cartagena",
		Email:        "david@example.com",
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return user
}

func TestUserService_Update_Partial(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	role := "admin"
	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Role: &role})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %s", updated.Role)
	}
	if updated.Name != seeded.Name || updated.Email != seeded.Email {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUserService_Update_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	role := "superuser"
	if _, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Role: &role}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	kept, err := repo.FindByID(context.Background(), seeded.ID)
	if err != nil || kept.Role != domain.RoleUser {
		t.Fatalf("role changed despite rejection: %v %+v", err, kept)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	password := "nuevaclave"
	updated, err := svc.Update(context.Background(), seeded.ID, ports.UpdateUserInput{Password: &password})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == "nuevaclave" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("nuevaclave")); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	deleted, err := svc.Delete(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != seeded.ID {
		t.Fatalf("wrong user deleted: %+v", deleted)
	}

	if _, err := repo.FindByID(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}

	if _, err := svc.Delete(context.Background(), seeded.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
