package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SocioProphet/zenflows/internal/data/repos"
	"github.com/SocioProphet/zenflows/internal/data/repos/testutil"
	"github.com/SocioProphet/zenflows/internal/pkg/errs"
)

func newAuthService(t *testing.T) (AuthService, context.Context) {
	t.Helper()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	agentRepo := repos.NewAgentRepo(tx, log)
	return NewAuthService(tx, log, agentRepo, "test-secret", time.Hour), context.Background()
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc, ctx := newAuthService(t)

	_, err := svc.Register(ctx, "", "nobody@example.com", "short")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *errs.ValidationError, got %T: %v", err, err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("expected name and password errors, got %v", ve.Fields)
	}
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, ctx := newAuthService(t)

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "correcthorse"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, "Alice Again", "alice@example.com", "correcthorse")
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *errs.ValidationError, got %T: %v", err, err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "email" {
		t.Errorf("expected email taken error, got %v", ve.Fields)
	}
}

func TestAuthServiceLoginAndParseToken(t *testing.T) {
	svc, ctx := newAuthService(t)

	agent, err := svc.Register(ctx, "Bob", "bob@example.com", "correcthorse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "bob@example.com", "wrongpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "correcthorse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	token, got, err := svc.Login(ctx, "bob@example.com", "correcthorse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != agent.ID {
		t.Errorf("agent id: got %s, want %s", got.ID, agent.ID)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != agent.ID {
		t.Errorf("token subject: got %s, want %s", id, agent.ID)
	}

	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Fatal("expected parse failure for garbage token")
	}
}
