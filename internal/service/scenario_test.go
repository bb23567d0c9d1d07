package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/msomdec/social-media-api/internal/domain"
	"github.com/msomdec/social-media-api/internal/repository/sqlite"
	"github.com/msomdec/social-media-api/internal/service"
)

func newTestServices(t *testing.T) (*service.AccountService, *service.MessageService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	accounts := service.NewAccountService(db.Accounts(), nil)
	return accounts, service.NewMessageService(db.Messages(), accounts, nil)
}

func TestScenario_RegisterPostDelete(t *testing.T) {
	accounts, messages := newTestServices(t)
	ctx := context.Background()

	bob, err := accounts.Register(ctx, domain.Account{Username: "bob", Password: "password"})
	if err != nil {
		t.Fatalf("Register bob: %v", err)
	}
	if bob.ID <= 0 {
		t.Fatalf("expected positive id, got %d", bob.ID)
	}

	_, err = accounts.Register(ctx, domain.Account{Username: "bob", Password: "other"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	msg, err := messages.Create(ctx, domain.Message{PostedBy: bob.ID, Text: "hi"}, bob)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = messages.Create(ctx, domain.Message{PostedBy: bob.ID, Text: ""}, bob)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	ok, err := messages.Delete(ctx, domain.Message{ID: 9999})
	if err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}
	if ok {
		t.Fatal("expected false when deleting unknown message")
	}

	got, err := messages.GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *msg {
		t.Fatalf("expected %+v, got %+v", *msg, *got)
	}
}

func TestScenario_LoginAgainstSQLite(t *testing.T) {
	accounts, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := accounts.Register(ctx, domain.Account{Username: "login", Password: "password"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := accounts.Login(ctx, "login", "password"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := accounts.Login(ctx, "login", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := accounts.Login(ctx, "nobody", "password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestScenario_ConcurrentRegistrationSameUsername(t *testing.T) {
	accounts, _ := newTestServices(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := accounts.Register(ctx, domain.Account{Username: "racer", Password: "password"})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, domain.ErrDuplicateUsername) {
				t.Errorf("expected ErrDuplicateUsername, got %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", successes)
	}
}
