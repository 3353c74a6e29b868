package shared

import (
	"context"
	"errors"
	"testing"

	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeUserGetter struct {
	err   error
	calls int
}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error {
	f.calls++
	return f.err
}

func TestEnsureUserExists_KnownUser(t *testing.T) {
	t.Parallel()

	getter := &fakeUserGetter{}
	checker := NewUserCheckerService(getter)

	if err := checker.EnsureUserExists(context.Background(), pkg.GenerateULIDObject()); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if getter.calls != 1 {
		t.Errorf("consultou o getter %d vezes, esperava 1", getter.calls)
	}
}

func TestEnsureUserExists_UnknownUser(t *testing.T) {
	t.Parallel()

	getter := &fakeUserGetter{err: errors.New("registro ausente")}
	checker := NewUserCheckerService(getter)

	err := checker.EnsureUserExists(context.Background(), pkg.GenerateULIDObject())
	if err == nil {
		t.Fatal("esperava erro para usuário desconhecido")
	}

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Errorf("erro = %v, esperava USER_NOT_FOUND", err)
	}
}

func TestEnsureUserExists_EmptyULIDShortCircuits(t *testing.T) {
	t.Parallel()

	getter := &fakeUserGetter{}
	checker := NewUserCheckerService(getter)

	if err := checker.EnsureUserExists(context.Background(), ulid.ULID{}); err == nil {
		t.Fatal("esperava erro para ULID zerado")
	}
	if getter.calls != 0 {
		t.Error("ULID zerado não deveria chegar ao getter")
	}
}

func TestBaseService_WithoutChecker(t *testing.T) {
	t.Parallel()

	base := BaseService{}
	if err := base.EnsureUserExists(context.Background(), pkg.GenerateULIDObject()); err == nil {
		t.Fatal("serviço sem checker configurado deveria falhar")
	}
}
