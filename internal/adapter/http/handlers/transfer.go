package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
)

const (
	csvContentType        = "text/csv; charset=UTF-8"
	csvContentDisposition = `attachment; filename="tasks.csv"`
	importFormField       = "file"
)

type TransferHandler struct {
	transferService ports.TransferService
}

func NewTransferHandler(transferService ports.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// ExportTasks renders the whole export before writing, so a failure still yields a JSON error.
func (h *TransferHandler) ExportTasks(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)

	var buf bytes.Buffer
	if err := h.transferService.ExportCSV(c.Request.Context(), ownerID, &buf); err != nil {
		zap.L().Error("failed to export tasks", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailExportTasks)
		return
	}

	c.Header("Content-Disposition", csvContentDisposition)
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

func (h *TransferHandler) ImportTasks(c *gin.Context) {
	ownerID := middleware.GetOwnerID(c)

	fileHeader, err := c.FormFile(importFormField)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidImportFile)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		zap.L().Warn("failed to open uploaded file", zap.String("file", fileHeader.Filename), zap.Error(err))
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidImportFile)
		return
	}
	defer file.Close()

	imported, err := h.transferService.ImportCSV(c.Request.Context(), ownerID, file)
	if err != nil {
		if errors.Is(err, domain.ErrImportFailed) {
			zap.L().Warn("csv import rejected", zap.String("owner_id", ownerID), zap.Error(err))
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateErrorWithDetail(http.StatusBadRequest, apierrors.MsgInvalidImportLines, middleware.GetLang(c), importCause(err)),
			)
			return
		}

		zap.L().Error("failed to import tasks", zap.String("owner_id", ownerID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailImportTasks)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResult{Imported: imported})
}

// importCause strips the sentinel prefix and keeps the underlying reason.
func importCause(err error) string {
	if cause, ok := strings.CutPrefix(err.Error(), domain.ErrImportFailed.Error()+": "); ok {
		return cause
	}
	return err.Error()
}
