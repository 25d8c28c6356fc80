package service

import (
	"context"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/metrics"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/ncastrod/taskcash/internal/repository"
	"go.uber.org/zap"
)

type TaskCompletionResult struct {
	Reward     int64            `json:"reward"`
	Completion *models.UserTask `json:"completion"`
	Balance    models.Balance   `json:"balance"`
}

type TaskService interface {
	CompleteTask(ctx context.Context, userID, taskID int64) (*TaskCompletionResult, error)
	GetActiveTasks(ctx context.Context) ([]models.Task, error)
	GetUserCompletions(ctx context.Context, userID int64) ([]models.UserTask, error)
}

type taskService struct {
	taskRepo        repository.TaskRepository
	referralService ReferralService
}

func NewTaskService(taskRepo repository.TaskRepository, referralService ReferralService) TaskService {
	return &taskService{
		taskRepo:        taskRepo,
		referralService: referralService,
	}
}

// CompleteTask pays the reward for a claimable task. The completion
// record, balance credit and counter increment commit together in the
// repository; the referral milestone evaluation runs after the commit
// and its failure never fails the completion.
func (s *taskService) CompleteTask(ctx context.Context, userID, taskID int64) (*TaskCompletionResult, error) {
	task, err := s.taskRepo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Active {
		return nil, apperrors.ErrTaskNotFound
	}

	completion, balance, err := s.taskRepo.Complete(ctx, userID, task)
	if err != nil {
		return nil, err
	}

	metrics.TaskCompletions.Inc()

	awarded, bonus, err := s.referralService.EvaluateMilestones(ctx, userID)
	if err != nil {
		logger.Log.Error("referral milestone evaluation failed",
			zap.Int64("user", userID), zap.Error(err))
	} else if awarded {
		logger.Log.Info("referral bonus awarded",
			zap.Int64("user", userID), zap.Int64("bonus", bonus))
	}

	return &TaskCompletionResult{
		Reward:     task.Reward,
		Completion: completion,
		Balance:    balance,
	}, nil
}

func (s *taskService) GetActiveTasks(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.GetActiveTasks(ctx)
}

func (s *taskService) GetUserCompletions(ctx context.Context, userID int64) ([]models.UserTask, error) {
	return s.taskRepo.GetUserCompletions(ctx, userID)
}
