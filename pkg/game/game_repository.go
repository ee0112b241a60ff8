package game

import (
	"context"
	"errors"

	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GameRepository interface {
		CreateTask(ctx context.Context, task *entities.GameTask) error
		GetTaskByID(ctx context.Context, id string) (*entities.GameTask, error)
		// GetTasks returns tasks sorted by order_index ascending; inactive
		// tasks are included only when includeInactive is set (admin views).
		GetTasks(ctx context.Context, includeInactive bool) ([]*entities.GameTask, error)
		UpdateTask(ctx context.Context, task *entities.GameTask) error
		DeleteTask(ctx context.Context, id string) error

		GetProgress(ctx context.Context, userID, taskID string) (*entities.UserTaskProgress, error)
		GetUserProgress(ctx context.Context, userID string) ([]*entities.UserTaskProgress, error)
		GetLatestCompletion(ctx context.Context, userID string) (*entities.UserTaskProgress, error)
		CreateProgress(ctx context.Context, progress *entities.UserTaskProgress) error
		UpdateProgress(ctx context.Context, progress *entities.UserTaskProgress) error
		// CompleteWithReward stores the progress row and the coin credit in
		// one transaction so a reward is never granted twice.
		CompleteWithReward(ctx context.Context, progress *entities.UserTaskProgress, reward *entities.CoinTransaction) error
	}

	gameRepository struct {
		db *gorm.DB
	}
)

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateTask(ctx context.Context, task *entities.GameTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *gameRepository) GetTaskByID(ctx context.Context, id string) (*entities.GameTask, error) {
	var task entities.GameTask
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *gameRepository) GetTasks(ctx context.Context, includeInactive bool) ([]*entities.GameTask, error) {
	var tasks []*entities.GameTask

	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("order_index ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *gameRepository) UpdateTask(ctx context.Context, task *entities.GameTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *gameRepository) DeleteTask(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GameTask{}).Error
}

func (r *gameRepository) GetProgress(ctx context.Context, userID, taskID string) (*entities.UserTaskProgress, error) {
	var progress entities.UserTaskProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *gameRepository) GetUserProgress(ctx context.Context, userID string) ([]*entities.UserTaskProgress, error) {
	var progress []*entities.UserTaskProgress
	if err := r.db.WithContext(ctx).
		Preload("Task").
		Joins("JOIN game_tasks ON game_tasks.id = user_task_progresses.task_id").
		Where("user_task_progresses.user_id = ?", userID).
		Order("game_tasks.order_index ASC").
		Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *gameRepository) GetLatestCompletion(ctx context.Context, userID string) (*entities.UserTaskProgress, error) {
	var progress entities.UserTaskProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND completed_at IS NOT NULL", userID, domain.TaskStatusCompleted).
		Order("completed_at DESC").
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *gameRepository) CreateProgress(ctx context.Context, progress *entities.UserTaskProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *gameRepository) UpdateProgress(ctx context.Context, progress *entities.UserTaskProgress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

func (r *gameRepository) CompleteWithReward(ctx context.Context, progress *entities.UserTaskProgress, reward *entities.CoinTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "task_id"}},
			UpdateAll: true,
		}).Create(progress).Error; err != nil {
			return err
		}
		if reward != nil {
			if err := tx.Create(reward).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
