package shared

import (
	"context"

	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// UserCheckerService é a guarda de posse dos serviços de domínio: toda
// operação valida que o dono informado existe antes de tocar contas,
// lançamentos ou regras.
type UserCheckerService struct {
	users UserGetter
}

func NewUserCheckerService(users UserGetter) *UserCheckerService {
	return &UserCheckerService{users: users}
}

func (s *UserCheckerService) EnsureUserExists(ctx context.Context, userID ulid.ULID) error {
	if s.users == nil {
		return appErrors.ErrInternalServer
	}

	// ULID zerado nunca identifica um usuário persistido; corta antes de
	// consultar o banco
	if pkg.IsEmptyULID(userID) {
		return appErrors.ErrUserNotFound
	}

	if err := s.users.Exists(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound.WithError(err)
	}

	return nil
}

// BaseService é embutido pelos serviços de domínio para herdarem a checagem
// de posse sem repetir o encanamento.
type BaseService struct {
	UserChecker *UserCheckerService
}

func (b *BaseService) EnsureUserExists(ctx context.Context, userID ulid.ULID) error {
	if b.UserChecker == nil {
		return appErrors.ErrInternalServer
	}
	return b.UserChecker.EnsureUserExists(ctx, userID)
}
