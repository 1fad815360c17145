package http

import (
	"log/slog"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
	"github.com/pontolabs/ponto-backend-go/internal/service/ingest"
)

// Time-clock exports rarely pass a few megabytes; 32 MiB leaves headroom.
const maxUploadBytes = 32 << 20

type PunchHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	ingestService ingest.Service
}

func NewPunchHandler(ingestService ingest.Service) PunchHandler {
	return &PunchHandlerImpl{ingestService: ingestService}
}

// Upload implements PunchHandler. It accepts a multipart form with the
// time-clock CSV export under the "file" field.
func (h *PunchHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		slog.Error("Upload parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing \"file\" field", nil)
		return
	}
	defer file.Close()

	summary, err := h.ingestService.ImportCSV(r.Context(), file)
	if err != nil {
		slog.Error("Upload import error", "error", err, "filename", header.Filename)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch upload stored",
		"filename", header.Filename,
		"batch_id", summary.BatchID,
		"rows", summary.RowCount,
		"employees", summary.Employees,
	)
	response.Created(w, "Upload stored successfully", summary)
}

// DeleteAll implements PunchHandler.
func (h *PunchHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.ingestService.DeleteAll(r.Context()); err != nil {
		slog.Error("DeleteAll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All punch records deleted", nil)
}
