package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Index renders the to-do page and shows every pending toast once.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	out, err := h.uc.Page(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Page: %v", err)
		h.renderError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     pageTemplate,
		Data:     h.newPageView(out),
	})
}

// AddForm handles the add form. Rejected names only produce a toast.
func (h *handler) AddForm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAddForm(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.uc.Add(ctx, sc, req.toInput()); err != nil && !isUserError(err) {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.renderError(c, err)
		return
	}

	h.redirectHome(c)
}

// ToggleForm handles a checkbox change.
func (h *handler) ToggleForm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.uc.Toggle(ctx, sc, req.toInput()); err != nil && !isUserError(err) {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.renderError(c, err)
		return
	}

	h.redirectHome(c)
}

// DeleteForm handles a delete button. It opens the confirmation prompt when
// confirmation is enabled and deletes right away otherwise.
func (h *handler) DeleteForm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processIndexReq(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if h.cfg.ConfirmDelete {
		_, err = h.uc.RequestDelete(ctx, sc, req.toInput())
	} else {
		_, err = h.uc.Delete(ctx, sc, req.toInput())
	}
	if err != nil && !isUserError(err) {
		h.l.Errorf(ctx, "uc.DeleteForm: %v", err)
		h.renderError(c, err)
		return
	}

	h.redirectHome(c)
}

// ConfirmDeleteForm handles the prompt's confirm button.
func (h *handler) ConfirmDeleteForm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if _, err := h.uc.ConfirmDelete(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.ConfirmDelete: %v", err)
		h.renderError(c, err)
		return
	}

	h.redirectHome(c)
}

// CancelDeleteForm handles the prompt's cancel button.
func (h *handler) CancelDeleteForm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.uc.CancelDelete(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.CancelDelete: %v", err)
		h.renderError(c, err)
		return
	}

	h.redirectHome(c)
}

func (h *handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) renderError(c *gin.Context, err error) {
	httpErr := h.mapError(err)
	c.String(httpErr.StatusCode, httpErr.Message)
}
