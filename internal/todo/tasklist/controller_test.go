package tasklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/model"
	"todo-list/internal/notification"
	"todo-list/internal/todo"
	"todo-list/internal/todo/tasklist"
)

type recorder struct {
	kinds    []model.NotificationKind
	messages []string
}

func (r *recorder) Notify(kind model.NotificationKind, message string) {
	r.kinds = append(r.kinds, kind)
	r.messages = append(r.messages, message)
}

func newController(t *testing.T, names ...string) (*tasklist.Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := tasklist.New(rec)
	for _, n := range names {
		_, err := c.AddTask(n)
		require.NoError(t, err)
	}
	*rec = recorder{}
	return c, rec
}

func names(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}

func TestAddTask(t *testing.T) {
	tests := map[string]struct {
		existing []string
		raw      string
		expErr   error
		expIndex int
		expNames []string
		expKinds []model.NotificationKind
		expDraft string
	}{
		"Adding a named task appends an incomplete task": {
			raw:      "Buy milk",
			expIndex: 0,
			expNames: []string{"Buy milk"},
			expKinds: []model.NotificationKind{model.NotificationSuccess},
		},
		"Adding appends at the end": {
			existing: []string{"Buy milk"},
			raw:      "Walk dog",
			expIndex: 1,
			expNames: []string{"Buy milk", "Walk dog"},
			expKinds: []model.NotificationKind{model.NotificationSuccess},
		},
		"Leading whitespace is trimmed": {
			raw:      "   Read book ",
			expIndex: 0,
			expNames: []string{"Read book "},
			expKinds: []model.NotificationKind{model.NotificationSuccess},
		},
		"Duplicated names are allowed": {
			existing: []string{"Same"},
			raw:      "Same",
			expIndex: 1,
			expNames: []string{"Same", "Same"},
			expKinds: []model.NotificationKind{model.NotificationSuccess},
		},
		"An empty name is rejected with a warning": {
			existing: []string{"Buy milk"},
			raw:      "",
			expErr:   todo.ErrEmptyName,
			expIndex: -1,
			expNames: []string{"Buy milk"},
			expKinds: []model.NotificationKind{model.NotificationWarning},
		},
		"A whitespace only name is rejected": {
			raw:      " \t ",
			expErr:   todo.ErrEmptyName,
			expIndex: -1,
			expNames: []string{},
			expKinds: []model.NotificationKind{model.NotificationWarning},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, rec := newController(t, test.existing...)
			c.SetDraft(test.raw)

			idx, err := c.AddTask(test.raw)

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
			} else {
				require.NoError(t, err)
				assert.False(t, c.Tasks()[idx].IsCompleted)
			}
			assert.Equal(t, test.expIndex, idx)
			assert.Equal(t, test.expNames, names(c.Tasks()))
			assert.Equal(t, test.expKinds, rec.kinds)
			assert.Equal(t, test.expDraft, c.Draft())
		})
	}
}

func TestAddTaskMessages(t *testing.T) {
	c, rec := newController(t)

	_, err := c.AddTask("")
	require.Error(t, err)
	_, err = c.AddTask("Buy milk")
	require.NoError(t, err)

	assert.Equal(t, []string{tasklist.MsgEmptyName, "Task added: Buy milk"}, rec.messages)
}

func TestDraft(t *testing.T) {
	c, _ := newController(t)

	c.SetDraft("  half typed")
	assert.Equal(t, "half typed", c.Draft())

	_, err := c.AddTask(c.Draft())
	require.NoError(t, err)
	assert.Equal(t, "", c.Draft())
}

func TestToggleComplete(t *testing.T) {
	c, rec := newController(t, "Buy milk", "Walk dog", "Read book")

	task, err := c.ToggleComplete(1)
	require.NoError(t, err)
	assert.Equal(t, model.Task{Name: "Walk dog", IsCompleted: true}, task)
	assert.Equal(t, []model.Task{
		{Name: "Buy milk"},
		{Name: "Walk dog", IsCompleted: true},
		{Name: "Read book"},
	}, c.Tasks())
	assert.Equal(t, []string{"You completed the task: Walk dog!! Congratulations!!"}, rec.messages)
	assert.Equal(t, []model.NotificationKind{model.NotificationSuccess}, rec.kinds)

	// Unchecking is silent.
	task, err = c.ToggleComplete(1)
	require.NoError(t, err)
	assert.False(t, task.IsCompleted)
	assert.Len(t, rec.messages, 1)
	assert.Equal(t, []model.Task{{Name: "Buy milk"}, {Name: "Walk dog"}, {Name: "Read book"}}, c.Tasks())

	// Checking again congratulates again.
	_, err = c.ToggleComplete(1)
	require.NoError(t, err)
	assert.Len(t, rec.messages, 2)
}

func TestToggleCompleteOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 2, 10} {
		c, rec := newController(t, "a", "b")

		_, err := c.ToggleComplete(idx)

		assert.ErrorIs(t, err, todo.ErrIndexOutOfRange)
		assert.Equal(t, []model.Task{{Name: "a"}, {Name: "b"}}, c.Tasks())
		assert.Empty(t, rec.messages)
	}
}

func TestDeleteTask(t *testing.T) {
	tests := map[string]struct {
		index    int
		expErr   error
		expNames []string
		expTask  model.Task
	}{
		"Deleting the first task shifts the rest": {
			index:    0,
			expNames: []string{"b", "c"},
			expTask:  model.Task{Name: "a"},
		},
		"Deleting a middle task": {
			index:    1,
			expNames: []string{"a", "c"},
			expTask:  model.Task{Name: "b"},
		},
		"Deleting the last task": {
			index:    2,
			expNames: []string{"a", "b"},
			expTask:  model.Task{Name: "c"},
		},
		"Out of range fails without changes": {
			index:    3,
			expErr:   todo.ErrIndexOutOfRange,
			expNames: []string{"a", "b", "c"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, rec := newController(t, "a", "b", "c")

			task, err := c.DeleteTask(test.index)

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				assert.Empty(t, rec.messages)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expTask, task)
				assert.Equal(t, []string{tasklist.MsgDeleted}, rec.messages)
				assert.Equal(t, []model.NotificationKind{model.NotificationInfo}, rec.kinds)
			}
			assert.Equal(t, test.expNames, names(c.Tasks()))
		})
	}
}

func TestDeleteConfirmationFlow(t *testing.T) {
	t.Run("Request keeps the list until confirmed", func(t *testing.T) {
		c, rec := newController(t, "a", "b")

		require.NoError(t, c.RequestDelete(0))
		assert.Equal(t, tasklist.PendingConfirm, c.State())
		assert.Equal(t, 2, c.Len())
		assert.Empty(t, rec.messages)

		task, ok := c.ConfirmDelete()
		assert.True(t, ok)
		assert.Equal(t, model.Task{Name: "a"}, task)
		assert.Equal(t, []string{"b"}, names(c.Tasks()))
		assert.Equal(t, tasklist.Idle, c.State())
		assert.Equal(t, []string{tasklist.MsgDeleted}, rec.messages)
	})

	t.Run("Cancel leaves the list and clears the selection", func(t *testing.T) {
		c, rec := newController(t, "a", "b")

		require.NoError(t, c.RequestDelete(1))
		c.CancelDelete()

		assert.Equal(t, tasklist.Idle, c.State())
		_, ok := c.Pending()
		assert.False(t, ok)
		assert.Equal(t, []string{"a", "b"}, names(c.Tasks()))

		_, ok = c.ConfirmDelete()
		assert.False(t, ok)
		assert.Equal(t, 2, c.Len())
		assert.Empty(t, rec.messages)
	})

	t.Run("Confirm without a request is a no-op", func(t *testing.T) {
		c, rec := newController(t, "a")

		_, ok := c.ConfirmDelete()

		assert.False(t, ok)
		assert.Equal(t, 1, c.Len())
		assert.Empty(t, rec.messages)
	})

	t.Run("A new request replaces the pending one", func(t *testing.T) {
		c, _ := newController(t, "a", "b", "c")

		require.NoError(t, c.RequestDelete(0))
		require.NoError(t, c.RequestDelete(2))
		idx, ok := c.Pending()
		require.True(t, ok)
		assert.Equal(t, 2, idx)

		task, ok := c.ConfirmDelete()
		assert.True(t, ok)
		assert.Equal(t, "c", task.Name)
		assert.Equal(t, []string{"a", "b"}, names(c.Tasks()))
	})

	t.Run("Completed tasks can be selected", func(t *testing.T) {
		c, _ := newController(t, "a")
		_, err := c.ToggleComplete(0)
		require.NoError(t, err)

		require.NoError(t, c.RequestDelete(0))
		_, ok := c.ConfirmDelete()
		assert.True(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Out of range request keeps the previous state", func(t *testing.T) {
		c, _ := newController(t, "a")
		require.NoError(t, c.RequestDelete(0))

		err := c.RequestDelete(5)

		assert.ErrorIs(t, err, todo.ErrIndexOutOfRange)
		idx, ok := c.Pending()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
	})
}

func TestPendingFollowsItsTask(t *testing.T) {
	t.Run("Removing an earlier task shifts the selection", func(t *testing.T) {
		c, _ := newController(t, "a", "b", "c")
		require.NoError(t, c.RequestDelete(2))

		_, err := c.DeleteTask(0)
		require.NoError(t, err)

		idx, ok := c.Pending()
		require.True(t, ok)
		assert.Equal(t, 1, idx)

		task, ok := c.ConfirmDelete()
		assert.True(t, ok)
		assert.Equal(t, "c", task.Name)
	})

	t.Run("Removing a later task keeps the selection", func(t *testing.T) {
		c, _ := newController(t, "a", "b", "c")
		require.NoError(t, c.RequestDelete(0))

		_, err := c.DeleteTask(2)
		require.NoError(t, err)

		idx, ok := c.Pending()
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("Removing the selected task clears the selection", func(t *testing.T) {
		c, _ := newController(t, "a", "b")
		require.NoError(t, c.RequestDelete(1))

		_, err := c.DeleteTask(1)
		require.NoError(t, err)

		assert.Equal(t, tasklist.Idle, c.State())
	})
}

func TestTasksReturnsACopy(t *testing.T) {
	c, _ := newController(t, "a")

	tasks := c.Tasks()
	tasks[0].Name = "changed"

	assert.Equal(t, "a", c.Tasks()[0].Name)
}

func TestWalkthrough(t *testing.T) {
	q := notification.New(10)
	c := tasklist.New(q)

	_, err := c.AddTask("Buy milk")
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Name: "Buy milk"}}, c.Tasks())

	_, err = c.AddTask("Walk dog")
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Name: "Buy milk"}, {Name: "Walk dog"}}, c.Tasks())
	q.Drain()

	_, err = c.ToggleComplete(0)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Name: "Buy milk", IsCompleted: true}, {Name: "Walk dog"}}, c.Tasks())
	completed := q.Drain()
	require.Len(t, completed, 1)
	assert.Equal(t, model.NotificationSuccess, completed[0].Kind)

	_, err = c.DeleteTask(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Name: "Buy milk", IsCompleted: true}}, c.Tasks())
}

func TestNilNotifier(t *testing.T) {
	c := tasklist.New(nil)

	assert.NotPanics(t, func() {
		_, _ = c.AddTask("")
		_, _ = c.AddTask("a")
		_, _ = c.ToggleComplete(0)
		_, _ = c.DeleteTask(0)
	})
	assert.Equal(t, "idle", c.State().String())
}
