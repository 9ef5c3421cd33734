package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/store"
	"github.com/taskhub-dev/taskhub/internal/types"
	"github.com/taskhub-dev/taskhub/internal/utils"
)

type CreateTaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	DueDate       string `json:"dueDate"`
	AssigneeEmail string `json:"assigneeEmail"`
}

// UpdateTaskRequest uses pointers so an omitted field can be told apart from
// a present-but-empty one: omitted means leave unchanged, empty means clear.
type UpdateTaskRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	DueDate       *string `json:"dueDate"`
	AssigneeEmail *string `json:"assigneeEmail"`
}

// parseDueDate accepts RFC3339 or a plain YYYY-MM-DD date. An empty string
// means no due date.
func parseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func parseTaskID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
		return
	}

	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	title := strings.TrimSpace(req.Title)

	if title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Title is required"})
		return
	}

	status := req.Status
	if status == "" {
		status = types.StatusTodo
	} else if !types.ValidStatus(status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid status value"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = types.PriorityMedium
	} else if !types.ValidPriority(priority) {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid priority value"})
		return
	}

	dueDate, err := parseDueDate(req.DueDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid due date format"})
		return
	}

	task := models.Task{
		OwnerID:       currentUser.ID,
		CreatorEmail:  currentUser.Email,
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		Status:        status,
		Priority:      priority,
		DueDate:       dueDate,
		AssigneeEmail: strings.TrimSpace(req.AssigneeEmail),
	}

	if err := h.tasks.Create(&task, time.Now()); err != nil {
		log.Printf("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error on task creation"})
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
		return
	}

	tasks, err := h.tasks.ListByOwner(currentUser.ID)

	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
		return
	}

	taskID, err := parseTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid Task ID format"})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	task, err := h.tasks.FindByID(taskID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Task not found"})
			return
		}
		log.Printf("Failed to fetch task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	// Ownership is immutable, set once at creation; re-checked on every
	// mutation regardless.
	if task.OwnerID != currentUser.ID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized to update this task"})
		return
	}

	changes := map[string]interface{}{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Title is required"})
			return
		}
		changes["title"] = title
	}

	if req.Description != nil {
		changes["description"] = strings.TrimSpace(*req.Description)
	}

	if req.Status != nil {
		if !types.ValidStatus(*req.Status) {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid status value"})
			return
		}
		changes["status"] = *req.Status
	}

	if req.Priority != nil {
		if !types.ValidPriority(*req.Priority) {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid priority value"})
			return
		}
		changes["priority"] = *req.Priority
	}

	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid due date format"})
			return
		}
		changes["due_date"] = dueDate
	}

	if req.AssigneeEmail != nil {
		changes["assignee_email"] = strings.TrimSpace(*req.AssigneeEmail)
	}

	updated, err := h.tasks.Update(task.ID, changes, time.Now())

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Task not found"})
			return
		}
		log.Printf("Failed to update task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authenticated"})
		return
	}

	taskID, err := parseTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid Task ID format"})
		return
	}

	task, err := h.tasks.FindByID(taskID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "Task not found"})
			return
		}
		log.Printf("Failed to fetch task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	if task.OwnerID != currentUser.ID {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized to delete this task"})
		return
	}

	if err := h.tasks.Delete(task.ID); err != nil {
		log.Printf("Failed to delete task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "Task removed successfully"})
}
