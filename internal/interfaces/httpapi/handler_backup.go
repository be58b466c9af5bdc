package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type restoreRequest struct {
	ArchivePath string `json:"archive_path" validate:"required"`
}

func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportBackup")
	defer span.End()

	manifest, archivePath, err := h.backupService.Export(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export backup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"archiveId":   manifest.ArchiveID,
		"createdAt":   manifest.CreatedAt,
		"fileCount":   manifest.FileCount,
		"archivePath": archivePath,
	})
}

func (h *Handler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportBackup")
	defer span.End()

	var req restoreRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	manifest, err := h.backupService.Import(ctx, req.ArchivePath)
	if err != nil {
		h.logger.ErrorContext(ctx, "import backup failed", "archive_path", req.ArchivePath, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"archiveId": manifest.ArchiveID,
		"createdAt": manifest.CreatedAt,
		"restored":  true,
	})
}
