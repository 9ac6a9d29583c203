package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwigmo/todotxt/internal/domain/model"
	"github.com/jwigmo/todotxt/internal/domain/model/item"
)

func TestTodo_AddTagKeepsOrderAndDedupes(t *testing.T) {
	todo := item.NewTodo("Task")
	todo.AddTag("work")
	todo.AddTag("urgent")
	todo.AddTag("work")

	assert.Equal(t, []string{"work", "urgent"}, todo.Tags())
}

func TestTodo_RemoveTag(t *testing.T) {
	todo := item.NewTodo("Task")
	todo.AddTag("work")
	todo.AddTag("urgent")
	todo.RemoveTag("work")

	assert.Equal(t, []string{"urgent"}, todo.Tags())
}

func TestTodo_CompleteAndReopen(t *testing.T) {
	completed := date(t, "2025-01-01")
	todo := item.NewTodo("Task")

	todo.Complete(&completed)
	assert.True(t, todo.IsCompleted())
	require.NotNil(t, todo.CompletionDate())
	assert.True(t, todo.CompletionDate().Equal(completed))

	todo.Reopen()
	assert.False(t, todo.IsCompleted())
	assert.Nil(t, todo.CompletionDate())
}

func TestTodo_WithIDPreservesFields(t *testing.T) {
	todo := item.NewTodo("Task")
	todo.SetPriority(item.PriorityC)
	todo.SetProject("Home")
	todo.AddTag("garden")

	id := model.NewID()
	copied, ok := todo.WithID(id).(*item.Todo)
	require.True(t, ok)

	assert.True(t, copied.ID().Equals(id))
	assert.Equal(t, todo.Title(), copied.Title())
	assert.Equal(t, todo.Serialize(), copied.Serialize())
}

func TestHeader_WithID(t *testing.T) {
	header := item.NewHeader("Work")
	id := model.NewID()

	copied, ok := header.WithID(id).(*item.Header)
	require.True(t, ok)
	assert.True(t, copied.ID().Equals(id))
	assert.Equal(t, "Work", copied.Title())
}

func TestItem_FreshIdentities(t *testing.T) {
	a := item.NewTodo("One")
	b := item.NewTodo("One")

	assert.False(t, a.ID().Equals(b.ID()))
}
