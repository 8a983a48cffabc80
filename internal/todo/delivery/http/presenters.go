package http

import (
	"fmt"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/pkg/response"
)

// --- Request DTOs ---

type indexReq struct {
	Index int `uri:"index" binding:"min=0"`
}

func (r indexReq) toInput() todo.IndexInput {
	return todo.IndexInput{Index: r.Index}
}

type addReq struct {
	Name string `json:"name"`
}

func (r addReq) toInput() todo.AddInput {
	return todo.AddInput{Name: r.Name}
}

type addForm struct {
	Todo string `form:"todo"`
}

func (r addForm) toInput() todo.AddInput {
	return todo.AddInput{Name: r.Todo}
}

// --- Response DTOs ---

type taskResp struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
}

func newTaskResp(index int, t model.Task) taskResp {
	return taskResp{
		Index:       index,
		Name:        t.Name,
		IsCompleted: t.IsCompleted,
	}
}

type pendingResp struct {
	Task taskResp `json:"task"`
}

func newPendingResp(p *todo.PendingDelete) *pendingResp {
	if p == nil {
		return nil
	}
	return &pendingResp{Task: newTaskResp(p.Index, p.Task)}
}

type listResp struct {
	Tasks   []taskResp   `json:"tasks"`
	Total   int          `json:"total"`
	Draft   string       `json:"draft"`
	Pending *pendingResp `json:"pending,omitempty"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(i, t)
	}
	return listResp{
		Tasks:   tasks,
		Total:   len(tasks),
		Draft:   out.Draft,
		Pending: newPendingResp(out.Pending),
	}
}

type taskOutResp struct {
	Task taskResp `json:"task"`
}

type confirmDeleteResp struct {
	Deleted bool      `json:"deleted"`
	Task    *taskResp `json:"task,omitempty"`
}

func (h *handler) newConfirmDeleteResp(out todo.ConfirmDeleteOutput) confirmDeleteResp {
	resp := confirmDeleteResp{Deleted: out.Deleted}
	if out.Deleted {
		t := newTaskResp(out.Index, out.Task)
		resp.Task = &t
	}
	return resp
}

type pendingDeleteResp struct {
	Pending *pendingResp `json:"pending"`
}

type notificationResp struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	CreatedAt response.DateTime `json:"created_at"`
}

type notificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newNotificationsResp(notes []model.Notification) notificationsResp {
	out := make([]notificationResp, len(notes))
	for i, n := range notes {
		out[i] = notificationResp{
			ID:        n.ID,
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: response.DateTime(n.CreatedAt),
		}
	}
	return notificationsResp{Notifications: out}
}

// --- Page view model ---

type taskView struct {
	Index       int
	ElementID   string
	Name        string
	IsCompleted bool
}

type pageView struct {
	Draft         string
	MaxNameLength int
	Tasks         []taskView
	Pending       *taskView
	Toasts        []model.Notification
}

func (h *handler) newPageView(out todo.PageOutput) pageView {
	tasks := make([]taskView, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskView(i, t)
	}

	view := pageView{
		Draft:         out.Draft,
		MaxNameLength: h.cfg.MaxNameLength,
		Tasks:         tasks,
		Toasts:        out.Notifications,
	}
	if out.Pending != nil {
		p := newTaskView(out.Pending.Index, out.Pending.Task)
		view.Pending = &p
	}
	return view
}

func newTaskView(index int, t model.Task) taskView {
	return taskView{
		Index:       index,
		ElementID:   fmt.Sprintf("item-%d", index),
		Name:        t.Name,
		IsCompleted: t.IsCompleted,
	}
}
