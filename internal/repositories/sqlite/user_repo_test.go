package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/utils"
)

func TestListAllOrdersByUserID(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 300, "c")
	seedUser(t, db, 100, "a")
	seedUser(t, db, 200, "b")
	repo := NewUserRepo(db)

	users, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, want := range []int64{100, 200, 300} {
		if users[i].UserID != want {
			t.Fatalf("position %d: expected user %d, got %d", i, want, users[i].UserID)
		}
	}
}

func TestListAllEmpty(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	users, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, 42, "asha")
	repo := NewUserRepo(db)

	u, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.UserID != 42 || u.Username == nil || *u.Username != "asha" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
