package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)
	categories, err := h.categoryService.ListCategories(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list categories", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListCategories)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategories(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if !validID(categoryID) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), middleware.GetOwnerID(c), categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
			return
		}

		zap.L().Error("failed to get category", zap.String("category_id", categoryID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailGetCategory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategory(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	input, err := validation.BuildCreateCategoryInput(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), middleware.GetOwnerID(c), input)
	if err != nil {
		h.respondWriteError(c, err, apierrors.MsgFailCreateCategory)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategory(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if !validID(categoryID) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	input, err := validation.BuildUpdateCategoryInput(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), middleware.GetOwnerID(c), categoryID, input)
	if err != nil {
		h.respondWriteError(c, err, apierrors.MsgFailUpdateCategory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategory(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if !validID(categoryID) {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryID)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), middleware.GetOwnerID(c), categoryID); err != nil {
		h.respondWriteError(c, err, apierrors.MsgFailDeleteCategory)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) respondWriteError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	case errors.Is(err, domain.ErrCategoryAlreadyExists):
		respondError(c, http.StatusConflict, apierrors.MsgCategoryAlreadyExists)
	case errors.Is(err, domain.ErrInvalidCategoryInput):
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload)
	default:
		zap.L().Error("category write failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, failMsg)
	}
}
