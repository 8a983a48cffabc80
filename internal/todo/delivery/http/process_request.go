package http

import (
	"github.com/gin-gonic/gin"

	"todo-list/internal/middleware"
	"todo-list/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errNoScope
	}
	return sc, nil
}

// processIndexReq binds the :index URI param.
func (h *handler) processIndexReq(c *gin.Context) (model.Scope, indexReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, indexReq{}, err
	}

	var req indexReq
	if err := c.ShouldBindUri(&req); err != nil {
		return sc, req, errInvalidIndex
	}
	return sc, req, nil
}

// processAddReq binds the JSON body of an add request.
func (h *handler) processAddReq(c *gin.Context) (model.Scope, addReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, addReq{}, err
	}

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processAddForm binds the page's add form.
func (h *handler) processAddForm(c *gin.Context) (model.Scope, addForm, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, addForm{}, err
	}

	var req addForm
	if err := c.ShouldBind(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}
