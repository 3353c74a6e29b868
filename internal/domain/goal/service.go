package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"Fluxo/internal/domain/shared"
	appErrors "Fluxo/internal/errors"
	"Fluxo/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
	shared.BaseService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository: repo,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

func (s *Service) CreateGoal(ctx context.Context, goal *Goal) error {
	if err := s.EnsureUserExists(ctx, goal.UserId); err != nil {
		return err
	}

	if err := s.validate(goal); err != nil {
		return err
	}

	now := time.Now()
	if pkg.IsEmptyULID(goal.Id) {
		goal.Id = pkg.GenerateULIDObject()
	}
	goal.Name = strings.TrimSpace(goal.Name)
	if goal.CurrentAmount < 0 {
		goal.CurrentAmount = 0
	}
	goal.IsCompleted = goal.CurrentAmount >= goal.TargetAmount
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if err := s.Repository.Create(ctx, goal); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) UpdateGoal(ctx context.Context, goal *Goal) error {
	stored, err := s.GetGoalByID(ctx, goal.Id, goal.UserId)
	if err != nil {
		return err
	}

	if err := s.validate(goal); err != nil {
		return err
	}

	stored.Name = strings.TrimSpace(goal.Name)
	stored.TargetAmount = goal.TargetAmount
	stored.Deadline = goal.Deadline
	stored.IsCompleted = stored.CurrentAmount >= stored.TargetAmount
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteGoal(ctx context.Context, goalID, userID ulid.ULID) error {
	if _, err := s.GetGoalByID(ctx, goalID, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, goalID, userID)
}

func (s *Service) GetGoalByID(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error) {
	goal, err := s.Repository.GetByID(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Goal, int64, error) {
	goals, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return goals, total, nil
}

// Contribute soma um aporte à meta e marca conclusão ao atingir o alvo.
func (s *Service) Contribute(ctx context.Context, goalID, userID ulid.ULID, amount float64) (*Goal, error) {
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	goal, err := s.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount += amount
	goal.IsCompleted = goal.CurrentAmount >= goal.TargetAmount
	goal.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, goal); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return goal, nil
}

func (s *Service) validate(goal *Goal) error {
	if strings.TrimSpace(goal.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}
	if goal.TargetAmount <= 0 {
		return appErrors.NewValidationError("targetAmount", "deve ser maior que zero")
	}
	return nil
}
