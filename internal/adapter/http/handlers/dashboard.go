package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

// DashboardHandler exposes the derived view and the filter state machine.
type DashboardHandler struct {
	session ports.ViewOps
}

func NewDashboardHandler(session ports.ViewOps) *DashboardHandler {
	return &DashboardHandler{session: session}
}

func (h *DashboardHandler) GetView(c *gin.Context) {
	v := h.session.View()
	c.JSON(http.StatusOK, mapper.ToViewResponse(v, h.session.Filters(), h.session.SelectedCategory()))
}

func (h *DashboardHandler) ChangeFilter(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ChangeFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilterPayload, lang),
		)
		return
	}

	if err := h.session.ChangeFilter(req.Key, req.Value); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilterPayload, lang),
		)
		return
	}

	v := h.session.View()
	c.JSON(http.StatusOK, mapper.ToViewResponse(v, h.session.Filters(), h.session.SelectedCategory()))
}

func (h *DashboardHandler) ResetFilters(c *gin.Context) {
	h.session.ResetFilters()

	v := h.session.View()
	c.JSON(http.StatusOK, mapper.ToViewResponse(v, h.session.Filters(), h.session.SelectedCategory()))
}

func (h *DashboardHandler) SelectCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFilterPayload, lang),
		)
		return
	}

	h.session.SelectCategory(req.CategoryID)

	v := h.session.View()
	c.JSON(http.StatusOK, mapper.ToViewResponse(v, h.session.Filters(), h.session.SelectedCategory()))
}
