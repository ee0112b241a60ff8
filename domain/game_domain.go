package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetTasks        = "game tasks retrieved successfully"
	MessageSuccessCreateTask      = "game task created successfully"
	MessageSuccessUpdateTask      = "game task updated successfully"
	MessageSuccessDeleteTask      = "game task deleted successfully"
	MessageSuccessCompleteTask    = "task completed successfully"
	MessageSuccessUploadTaskImage = "game task image uploaded successfully"
	MessageSuccessVerifyTask      = "task completion reviewed successfully"
	MessageSuccessGetProgress     = "task progress retrieved successfully"

	MessageFailedGetTasks        = "failed to retrieve game tasks"
	MessageFailedCreateTask      = "failed to create game task"
	MessageFailedUpdateTask      = "failed to update game task"
	MessageFailedDeleteTask      = "failed to delete game task"
	MessageFailedCompleteTask    = "failed to complete task"
	MessageFailedUploadTaskImage = "failed to upload game task image"
	MessageFailedVerifyTask      = "failed to review task completion"
	MessageFailedGetProgress     = "failed to retrieve task progress"

	ErrTaskNotFound         = errors.New("game task not found")
	ErrTaskInactive         = errors.New("game task is not active")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrTaskLocked           = errors.New("task not yet available")
	ErrProgressNotFound     = errors.New("task progress not found")
	ErrProgressNotPending   = errors.New("task progress is not pending verification")
	ErrInvalidTaskType      = errors.New("invalid task type")
)

const (
	TaskStatusPendingVerification = "PendingVerification"
	TaskStatusCompleted           = "Completed"
	TaskStatusRejected            = "Rejected"
)

// TaskTypes is the closed set of engagement kinds the storefront renders.
var TaskTypes = []string{
	"DAILY_LOGIN",
	"PROFILE_COMPLETE",
	"FIRST_PURCHASE",
	"PURCHASE",
	"REVIEW",
	"SHARE",
	"REFERRAL",
	"SURVEY",
	"VIDEO_WATCH",
	"SOCIAL_FOLLOW",
	"CUSTOM",
}

func IsValidTaskType(taskType string) bool {
	for _, t := range TaskTypes {
		if t == taskType {
			return true
		}
	}
	return false
}

type (
	CreateTaskRequest struct {
		Name                 string `json:"name" validate:"required"`
		Description          string `json:"description" validate:"omitempty"`
		CoinReward           int    `json:"coin_reward" validate:"required,min=1"`
		TaskType             string `json:"task_type" validate:"required"`
		DelayHours           int    `json:"delay_hours" validate:"min=0"`
		OrderIndex           int    `json:"order_index" validate:"min=0"`
		IsActive             bool   `json:"is_active"`
		VerificationRequired bool   `json:"verification_required"`
	}

	UpdateTaskRequest struct {
		Name                 string `json:"name" validate:"omitempty"`
		Description          string `json:"description" validate:"omitempty"`
		CoinReward           *int   `json:"coin_reward" validate:"omitempty,min=1"`
		TaskType             string `json:"task_type" validate:"omitempty"`
		DelayHours           *int   `json:"delay_hours" validate:"omitempty,min=0"`
		OrderIndex           *int   `json:"order_index" validate:"omitempty,min=0"`
		IsActive             *bool  `json:"is_active"`
		VerificationRequired *bool  `json:"verification_required"`
	}

	UploadTaskImageRequest struct {
		TaskID string                `json:"task_id" form:"task_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	TaskResponse struct {
		ID                   string `json:"id"`
		Name                 string `json:"name"`
		Description          string `json:"description"`
		CoinReward           int    `json:"coin_reward"`
		TaskType             string `json:"task_type"`
		DelayHours           int    `json:"delay_hours"`
		OrderIndex           int    `json:"order_index"`
		IsActive             bool   `json:"is_active"`
		VerificationRequired bool   `json:"verification_required"`
		ImageURL             string `json:"image_url,omitempty"`
		// Per-user completion state; empty when the caller has no progress row.
		UserStatus string `json:"user_status,omitempty"`
	}

	TaskProgressResponse struct {
		TaskID      string     `json:"task_id"`
		TaskName    string     `json:"task_name"`
		CoinReward  int        `json:"coin_reward"`
		Status      string     `json:"status"`
		CompletedAt *time.Time `json:"completed_at,omitempty"`
	}

	VerifyTaskRequest struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		TaskID   string `json:"task_id" validate:"required,uuid"`
		Approved bool   `json:"approved"`
	}
)
