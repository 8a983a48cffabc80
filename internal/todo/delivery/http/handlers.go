package http

import (
	"github.com/gin-gonic/gin"

	"todo-list/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the session's tasks in display order, the input draft and the task waiting for delete confirmation.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a task
// @Description Appends an incomplete task. Leading whitespace is trimmed and empty names are rejected.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task name"
// @Success     200  {object} taskOutResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskOutResp{Task: newTaskResp(output.Index, output.Task)})
}

// Toggle godoc
// @Summary     Toggle a task
// @Description Flips the completion flag of the task at index.
// @Tags        Tasks
// @Produce     json
// @Param       index path int true "Task index"
// @Success     200 {object} taskOutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{index}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Toggle(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskOutResp{Task: newTaskResp(output.Index, output.Task)})
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task at index without asking for confirmation.
// @Tags        Tasks
// @Produce     json
// @Param       index path int true "Task index"
// @Success     200 {object} taskOutResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{index} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Delete(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskOutResp{Task: newTaskResp(output.Index, output.Task)})
}

// RequestDelete godoc
// @Summary     Ask to delete a task
// @Description Selects the task at index for deletion. The list is unchanged until the deletion is confirmed.
// @Tags        Deletion
// @Produce     json
// @Param       index path int true "Task index"
// @Success     200 {object} pendingDeleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{index}/deletion [POST]
func (h *handler) RequestDelete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.RequestDelete(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, pendingDeleteResp{Pending: newPendingResp(&output.Pending)})
}

// PendingDelete godoc
// @Summary     Get the pending deletion
// @Tags        Deletion
// @Produce     json
// @Success     200 {object} pendingDeleteResp
// @Router      /api/v1/deletion [GET]
func (h *handler) PendingDelete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	pending, err := h.uc.PendingDelete(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.PendingDelete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, pendingDeleteResp{Pending: newPendingResp(pending)})
}

// ConfirmDelete godoc
// @Summary     Confirm the pending deletion
// @Description Removes the selected task. Without a selection nothing is removed and deleted is false.
// @Tags        Deletion
// @Produce     json
// @Success     200 {object} confirmDeleteResp
// @Router      /api/v1/deletion/confirm [POST]
func (h *handler) ConfirmDelete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ConfirmDelete(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmDelete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConfirmDeleteResp(output))
}

// CancelDelete godoc
// @Summary     Cancel the pending deletion
// @Tags        Deletion
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/deletion/cancel [POST]
func (h *handler) CancelDelete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.CancelDelete(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.CancelDelete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Notifications godoc
// @Summary     Drain notifications
// @Description Returns the toasts emitted since the last call, oldest first.
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} notificationsResp
// @Router      /api/v1/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	notes, err := h.uc.Notifications(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Notifications: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNotificationsResp(notes))
}

// Reset godoc
// @Summary     Reset the session
// @Description Forgets the session's list, as a page reload would.
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/session [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
