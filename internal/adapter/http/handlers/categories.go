package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/http/validation"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type CategoryHandler struct {
	session ports.CategoryOps
}

func NewCategoryHandler(session ports.CategoryOps) *CategoryHandler {
	return &CategoryHandler{session: session}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	categories, err := h.session.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	category, err := h.session.CreateCategory(c.Request.Context(), domain.CreateCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.writeCategoryError(c, lang, err, apierrors.MsgFailCreateCategory, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	categoryID, ok := parseCategoryID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryID, lang),
		)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateCategoryRequest
	if json.Unmarshal(body, &raw) != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	patch, err := validation.BuildCategoryPatch(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	category, err := h.session.UpdateCategory(c.Request.Context(), categoryID, patch)
	if err != nil {
		h.writeCategoryError(c, lang, err, apierrors.MsgFailUpdateCategory, "failed to update category")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	categoryID, ok := parseCategoryID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryID, lang),
		)
		return
	}

	if err := h.session.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		h.writeCategoryError(c, lang, err, apierrors.MsgFailDeleteCategory, "failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) writeCategoryError(c *gin.Context, lang string, err error, failKey, logMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
		)
	case errors.As(err, &verr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func parseCategoryID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
