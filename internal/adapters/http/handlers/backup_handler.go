package handlers

import (
	"errors"
	"path/filepath"

	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/core/services"
	"sacco-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BackupHandler handles database backup endpoints
type BackupHandler struct {
	backupService *services.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// RestoreRequest represents restore request body
type RestoreRequest struct {
	Snapshot string `json:"snapshot"`
}

// Snapshot handles backup creation
// @Summary Create backup
// @Description Copy the database file into the backup directory (admin only)
// @Tags Backup
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Router /backups [post]
func (h *BackupHandler) Snapshot(c *fiber.Ctx) error {
	path, err := h.backupService.Snapshot()
	if err != nil {
		return response.InternalServerError(c, "Failed to create backup")
	}

	return response.Created(c, "Backup created successfully", fiber.Map{
		"snapshot": filepath.Base(path),
	})
}

// List handles backup listing
// @Summary List backups
// @Description List available snapshots, newest first (admin only)
// @Tags Backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /backups [get]
func (h *BackupHandler) List(c *fiber.Ctx) error {
	names, err := h.backupService.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to list backups")
	}

	return response.Success(c, "Backups retrieved successfully", fiber.Map{
		"snapshots": names,
	})
}

// Restore handles database restore
// @Summary Restore backup
// @Description Overwrite the database file from a snapshot; restart the server afterwards (admin only)
// @Tags Backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RestoreRequest true "Snapshot name"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /backups/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	var req RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.backupService.Restore(req.Snapshot); err != nil {
		switch {
		case domain.IsValidation(err):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Snapshot not found")
		default:
			return response.InternalServerError(c, "Failed to restore backup")
		}
	}

	return response.Success(c, "Backup restored; restart the server to reopen the store", nil)
}
