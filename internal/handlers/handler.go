package handlers

import (
	"github.com/taskhub-dev/taskhub/internal/auth"
	"github.com/taskhub-dev/taskhub/internal/store"
)

// Handler carries the injected stores and token manager. Construction
// happens once in main; there is no package-level state.
type Handler struct {
	users  *store.Users
	tasks  *store.Tasks
	tokens *auth.TokenManager
}

func New(users *store.Users, tasks *store.Tasks, tokens *auth.TokenManager) *Handler {
	return &Handler{users: users, tasks: tasks, tokens: tokens}
}
