package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub-dev/taskhub/db"
	"github.com/taskhub-dev/taskhub/internal/models"
	"github.com/taskhub-dev/taskhub/internal/store"
	"github.com/taskhub-dev/taskhub/internal/types"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

func TestUsers_CreateAndFind(t *testing.T) {
	users := store.NewUsers(newTestDB(t))
	now := time.Now()

	user := models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, users.Create(&user, now))
	assert.NotZero(t, user.ID)
	assert.True(t, user.CreatedAt.Equal(now))

	found, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	users := store.NewUsers(newTestDB(t))
	now := time.Now()

	require.NoError(t, users.Create(&models.User{Name: "A", Email: "dup@example.com", PasswordHash: "h"}, now))

	err := users.Create(&models.User{Name: "B", Email: "dup@example.com", PasswordHash: "h"}, now)
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestUsers_NotFound(t *testing.T) {
	users := store.NewUsers(newTestDB(t))

	_, err := users.FindByEmail("ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = users.FindByID(999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = users.UpdatePasswordHash(999, "newhash")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_UpdatePasswordHash(t *testing.T) {
	users := store.NewUsers(newTestDB(t))

	user := models.User{Name: "A", Email: "a@example.com", PasswordHash: "old"}
	require.NoError(t, users.Create(&user, time.Now()))

	require.NoError(t, users.UpdatePasswordHash(user.ID, "new"))

	found, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)
}

func TestTasks_CreateSetsTimestamps(t *testing.T) {
	tasks := store.NewTasks(newTestDB(t))
	now := time.Now()

	task := models.Task{OwnerID: 1, CreatorEmail: "a@example.com", Title: "X", Status: types.StatusTodo, Priority: types.PriorityMedium}
	require.NoError(t, tasks.Create(&task, now))

	assert.NotZero(t, task.ID)
	assert.True(t, task.CreatedAt.Equal(now))
	assert.True(t, task.UpdatedAt.Equal(now))
}

func TestTasks_ListByOwnerNewestFirst(t *testing.T) {
	tasks := store.NewTasks(newTestDB(t))
	base := time.Now()

	for i, title := range []string{"first", "second", "third"} {
		task := models.Task{OwnerID: 1, CreatorEmail: "a@example.com", Title: title, Status: types.StatusTodo, Priority: types.PriorityMedium}
		require.NoError(t, tasks.Create(&task, base.Add(time.Duration(i)*time.Second)))
	}
	other := models.Task{OwnerID: 2, CreatorEmail: "b@example.com", Title: "not mine", Status: types.StatusTodo, Priority: types.PriorityMedium}
	require.NoError(t, tasks.Create(&other, base))

	list, err := tasks.ListByOwner(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "first", list[2].Title)
}

func TestTasks_ListByOwnerEmpty(t *testing.T) {
	tasks := store.NewTasks(newTestDB(t))

	list, err := tasks.ListByOwner(1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestTasks_UpdateOnlyGivenColumns(t *testing.T) {
	tasks := store.NewTasks(newTestDB(t))
	created := time.Now()

	task := models.Task{
		OwnerID:      1,
		CreatorEmail: "a@example.com",
		Title:        "X",
		Description:  "keep me",
		Status:       types.StatusTodo,
		Priority:     types.PriorityHigh,
	}
	require.NoError(t, tasks.Create(&task, created))

	later := created.Add(time.Minute)
	updated, err := tasks.Update(task.ID, map[string]interface{}{"status": types.StatusDone}, later)
	require.NoError(t, err)

	assert.Equal(t, types.StatusDone, updated.Status)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, types.PriorityHigh, updated.Priority)
	assert.WithinDuration(t, later, updated.UpdatedAt, time.Second)
	assert.WithinDuration(t, created, updated.CreatedAt, time.Second)
}

func TestTasks_UpdateMissing(t *testing.T) {
	tasks := store.NewTasks(newTestDB(t))

	_, err := tasks.Update(42, map[string]interface{}{"status": types.StatusDone}, time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTasks_Delete(t *testing.T) {
	tasks := store.NewTasks(newTestDB(t))

	task := models.Task{OwnerID: 1, CreatorEmail: "a@example.com", Title: "X", Status: types.StatusTodo, Priority: types.PriorityMedium}
	require.NoError(t, tasks.Create(&task, time.Now()))

	require.NoError(t, tasks.Delete(task.ID))

	_, err := tasks.FindByID(task.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, tasks.Delete(task.ID), store.ErrNotFound)
}
