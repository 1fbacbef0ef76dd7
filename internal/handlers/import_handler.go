package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/services"
)

// ImportHandler handles CSV batch commits.
type ImportHandler struct {
	importService services.ImportServicer
	auditService  services.AuditServicer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService services.ImportServicer, auditService services.AuditServicer) *ImportHandler {
	return &ImportHandler{importService: importService, auditService: auditService}
}

// ImportCSV commits an uploaded CSV batch to the store
// @Summary     Import a CSV batch
// @Description Parse an uploaded CSV file and store its valid transactions under a new batch ID
// @Tags        imports
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "CSV file (date,type,amount,category,description)"
// @Success     201 {object} services.ImportResult "Import result"
// @Failure     400 {object} ErrorResponse "Invalid or empty upload"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /imports/csv [post]
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "file upload is required"))
		return
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("IMPORT_CSV", "batch", result.BatchID, c.ClientIP(),
		map[string]interface{}{"filename": header.Filename, "imported": result.Imported, "skipped": result.Skipped})

	c.JSON(http.StatusCreated, result)
}
