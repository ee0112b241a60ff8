package handlers

import (
	"Experience-Club-Backend/domain"
	"Experience-Club-Backend/internal/api/presenters"
	"Experience-Club-Backend/pkg/game"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GameHandler interface {
		GetTasks(c *fiber.Ctx) error
		GetAllTasks(c *fiber.Ctx) error
		CreateTask(c *fiber.Ctx) error
		UpdateTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
		UploadTaskImage(c *fiber.Ctx) error
		CompleteTask(c *fiber.Ctx) error
		VerifyTaskCompletion(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
	}

	gameHandler struct {
		gameService game.GameService
		validator   *validator.Validate
	}
)

func NewGameHandler(gameService game.GameService, validator *validator.Validate) GameHandler {
	return &gameHandler{
		gameService: gameService,
		validator:   validator,
	}
}

func (h *gameHandler) UploadTaskImage(c *fiber.Ctx) error {
	req := new(domain.UploadTaskImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadTaskImage, err)
	}

	url, err := h.gameService.UploadTaskImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedUploadTaskImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"url": url}, fiber.StatusCreated, domain.MessageSuccessUploadTaskImage)
}

func (h *gameHandler) GetTasks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	tasks, err := h.gameService.GetTasks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, tasks, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *gameHandler) GetAllTasks(c *fiber.Ctx) error {
	tasks, err := h.gameService.GetAllTasks(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, tasks, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *gameHandler) CreateTask(c *fiber.Ctx) error {
	req := new(domain.CreateTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTask, err)
	}

	res, err := h.gameService.CreateTask(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCreateTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTask)
}

func (h *gameHandler) UpdateTask(c *fiber.Ctx) error {
	taskID := c.Params("id")
	req := new(domain.UpdateTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	res, err := h.gameService.UpdateTask(c.Context(), taskID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedUpdateTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTask)
}

func (h *gameHandler) DeleteTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	if err := h.gameService.DeleteTask(c.Context(), taskID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}

func (h *gameHandler) CompleteTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID := c.Params("id")

	res, err := h.gameService.CompleteTask(c.Context(), userID, taskID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCompleteTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteTask)
}

func (h *gameHandler) VerifyTaskCompletion(c *fiber.Ctx) error {
	req := new(domain.VerifyTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyTask, err)
	}

	if err := h.gameService.VerifyTaskCompletion(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedVerifyTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyTask)
}

func (h *gameHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	progress, err := h.gameService.GetProgress(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetProgress, err)
	}

	return presenters.SuccessResponse(c, progress, fiber.StatusOK, domain.MessageSuccessGetProgress)
}
