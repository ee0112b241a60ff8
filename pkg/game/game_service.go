package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"
	"Experience-Club-Backend/internal/utils/storage"
	"Experience-Club-Backend/pkg/coin"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GameService interface {
		GetTasks(ctx context.Context, userID string) ([]domain.TaskResponse, error)
		GetAllTasks(ctx context.Context) ([]domain.TaskResponse, error)
		CreateTask(ctx context.Context, req domain.CreateTaskRequest) (domain.TaskResponse, error)
		UpdateTask(ctx context.Context, taskID string, req domain.UpdateTaskRequest) (domain.TaskResponse, error)
		DeleteTask(ctx context.Context, taskID string) error
		UploadTaskImage(ctx context.Context, req domain.UploadTaskImageRequest) (string, error)
		CompleteTask(ctx context.Context, userID, taskID string) (domain.TaskProgressResponse, error)
		VerifyTaskCompletion(ctx context.Context, req domain.VerifyTaskRequest) error
		GetProgress(ctx context.Context, userID string) ([]domain.TaskProgressResponse, error)
	}

	gameService struct {
		gameRepository GameRepository
		coinRepository coin.CoinRepository
		s3             storage.AwsS3
	}
)

func NewGameService(gameRepository GameRepository, coinRepository coin.CoinRepository, s3 storage.AwsS3) GameService {
	return &gameService{
		gameRepository: gameRepository,
		coinRepository: coinRepository,
		s3:             s3,
	}
}

func (s *gameService) GetTasks(ctx context.Context, userID string) ([]domain.TaskResponse, error) {
	tasks, err := s.gameRepository.GetTasks(ctx, false)
	if err != nil {
		return nil, err
	}

	statusByTask := map[string]string{}
	if userID != "" {
		progress, err := s.gameRepository.GetUserProgress(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, p := range progress {
			statusByTask[p.TaskID.String()] = p.Status
		}
	}

	result := make([]domain.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response := toTaskResponse(task)
		response.UserStatus = statusByTask[task.ID.String()]
		result = append(result, response)
	}
	return result, nil
}

func (s *gameService) GetAllTasks(ctx context.Context) ([]domain.TaskResponse, error) {
	tasks, err := s.gameRepository.GetTasks(ctx, true)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, toTaskResponse(task))
	}
	return result, nil
}

func (s *gameService) CreateTask(ctx context.Context, req domain.CreateTaskRequest) (domain.TaskResponse, error) {
	if !domain.IsValidTaskType(req.TaskType) {
		return domain.TaskResponse{}, domain.ErrInvalidTaskType
	}

	task := &entities.GameTask{
		ID:                   uuid.New(),
		Name:                 req.Name,
		Description:          req.Description,
		CoinReward:           req.CoinReward,
		TaskType:             req.TaskType,
		DelayHours:           req.DelayHours,
		OrderIndex:           req.OrderIndex,
		IsActive:             req.IsActive,
		VerificationRequired: req.VerificationRequired,
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	if err := s.gameRepository.CreateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

func (s *gameService) UpdateTask(ctx context.Context, taskID string, req domain.UpdateTaskRequest) (domain.TaskResponse, error) {
	task, err := s.gameRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TaskResponse{}, domain.ErrTaskNotFound
		}
		return domain.TaskResponse{}, err
	}

	if req.Name != "" {
		task.Name = req.Name
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.CoinReward != nil {
		task.CoinReward = *req.CoinReward
	}
	if req.TaskType != "" {
		if !domain.IsValidTaskType(req.TaskType) {
			return domain.TaskResponse{}, domain.ErrInvalidTaskType
		}
		task.TaskType = req.TaskType
	}
	if req.DelayHours != nil {
		task.DelayHours = *req.DelayHours
	}
	if req.OrderIndex != nil {
		task.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		task.IsActive = *req.IsActive
	}
	if req.VerificationRequired != nil {
		task.VerificationRequired = *req.VerificationRequired
	}
	task.UpdatedAt = time.Now()

	if err := s.gameRepository.UpdateTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

func (s *gameService) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := s.gameRepository.GetTaskByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	return s.gameRepository.DeleteTask(ctx, taskID)
}

func (s *gameService) UploadTaskImage(ctx context.Context, req domain.UploadTaskImageRequest) (string, error) {
	task, err := s.gameRepository.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrTaskNotFound
		}
		return "", err
	}

	imageID := uuid.New()
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("task-%s-%s", task.ID.String(), imageID.String()),
		req.Image,
		"tasks",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	task.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	task.UpdatedAt = time.Now()

	if err := s.gameRepository.UpdateTask(ctx, task); err != nil {
		return "", err
	}
	return task.ImageURL, nil
}

func (s *gameService) CompleteTask(ctx context.Context, userID, taskID string) (domain.TaskProgressResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TaskProgressResponse{}, domain.ErrParseUUID
	}

	task, err := s.gameRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TaskProgressResponse{}, domain.ErrTaskNotFound
		}
		return domain.TaskProgressResponse{}, err
	}
	if !task.IsActive {
		return domain.TaskProgressResponse{}, domain.ErrTaskInactive
	}

	progress, err := s.gameRepository.GetProgress(ctx, userID, taskID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.TaskProgressResponse{}, err
	}
	if progress != nil && progress.Status != domain.TaskStatusRejected {
		return domain.TaskProgressResponse{}, domain.ErrTaskAlreadyCompleted
	}

	if task.DelayHours > 0 {
		latest, err := s.gameRepository.GetLatestCompletion(ctx, userID)
		if err != nil {
			return domain.TaskProgressResponse{}, err
		}
		if latest != nil && latest.CompletedAt != nil {
			unlockAt := latest.CompletedAt.Add(time.Duration(task.DelayHours) * time.Hour)
			if time.Now().Before(unlockAt) {
				return domain.TaskProgressResponse{}, domain.ErrTaskLocked
			}
		}
	}

	now := time.Now()
	isNew := progress == nil
	if isNew {
		progress = &entities.UserTaskProgress{
			ID:     uuid.New(),
			UserID: userUUID,
			TaskID: task.ID,
		}
		progress.CreatedAt = now
	}
	progress.UpdatedAt = now

	if task.VerificationRequired {
		progress.Status = domain.TaskStatusPendingVerification
		progress.CompletedAt = nil

		var storeErr error
		if isNew {
			storeErr = s.gameRepository.CreateProgress(ctx, progress)
		} else {
			storeErr = s.gameRepository.UpdateProgress(ctx, progress)
		}
		if storeErr != nil {
			return domain.TaskProgressResponse{}, storeErr
		}
		return toProgressResponse(progress, task), nil
	}

	progress.Status = domain.TaskStatusCompleted
	progress.CompletedAt = &now

	reward, err := s.buildReward(ctx, userUUID, task, now)
	if err != nil {
		return domain.TaskProgressResponse{}, err
	}
	if err := s.gameRepository.CompleteWithReward(ctx, progress, reward); err != nil {
		return domain.TaskProgressResponse{}, err
	}
	return toProgressResponse(progress, task), nil
}

func (s *gameService) VerifyTaskCompletion(ctx context.Context, req domain.VerifyTaskRequest) error {
	progress, err := s.gameRepository.GetProgress(ctx, req.UserID, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProgressNotFound
		}
		return err
	}
	if progress.Status != domain.TaskStatusPendingVerification {
		return domain.ErrProgressNotPending
	}

	now := time.Now()
	progress.UpdatedAt = now

	if !req.Approved {
		progress.Status = domain.TaskStatusRejected
		return s.gameRepository.UpdateProgress(ctx, progress)
	}

	task, err := s.gameRepository.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	progress.Status = domain.TaskStatusCompleted
	progress.CompletedAt = &now

	reward, err := s.buildReward(ctx, progress.UserID, task, now)
	if err != nil {
		return err
	}
	return s.gameRepository.CompleteWithReward(ctx, progress, reward)
}

func (s *gameService) GetProgress(ctx context.Context, userID string) ([]domain.TaskProgressResponse, error) {
	progress, err := s.gameRepository.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TaskProgressResponse, 0, len(progress))
	for _, p := range progress {
		result = append(result, toProgressResponse(p, p.Task))
	}
	return result, nil
}

func (s *gameService) buildReward(ctx context.Context, userID uuid.UUID, task *entities.GameTask, now time.Time) (*entities.CoinTransaction, error) {
	balance, err := s.coinRepository.GetUserBalance(ctx, userID.String())
	if err != nil {
		return nil, err
	}

	reward := &entities.CoinTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      task.CoinReward,
		Type:        domain.CoinTypeReward,
		Feature:     "GameTask",
		Description: fmt.Sprintf("Reward for completing task %s", task.Name),
		Balance:     balance + task.CoinReward,
	}
	reward.CreatedAt = now
	reward.UpdatedAt = now
	return reward, nil
}

func toTaskResponse(task *entities.GameTask) domain.TaskResponse {
	return domain.TaskResponse{
		ID:                   task.ID.String(),
		Name:                 task.Name,
		Description:          task.Description,
		CoinReward:           task.CoinReward,
		TaskType:             task.TaskType,
		DelayHours:           task.DelayHours,
		OrderIndex:           task.OrderIndex,
		IsActive:             task.IsActive,
		VerificationRequired: task.VerificationRequired,
		ImageURL:             task.ImageURL,
	}
}

func toProgressResponse(p *entities.UserTaskProgress, task *entities.GameTask) domain.TaskProgressResponse {
	response := domain.TaskProgressResponse{
		TaskID:      p.TaskID.String(),
		Status:      p.Status,
		CompletedAt: p.CompletedAt,
	}
	if task != nil {
		response.TaskName = task.Name
		response.CoinReward = task.CoinReward
	}
	return response
}
