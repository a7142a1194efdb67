package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
	"github.com/attendlyhq/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecordHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
	}
}

func queryParam(r *http.Request, key string) *string {
	if value := r.URL.Query().Get(key); value != "" {
		return &value
	}
	return nil
}

// List implements RecordHandler.
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := record.RecordFilter{
		EmployeeID: queryParam(r, "employee_id"),
		FromDate:   queryParam(r, "from"),
		ToDate:     queryParam(r, "to"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recordService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements RecordHandler.
func (h *recordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")
	if recordID == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.recordService.GetRecord(r.Context(), recordID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements RecordHandler.
func (h *recordHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req record.ImportRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get JSON data from 'data' field
	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Original export file is optional; when present it is archived.
	file, fileHeader, err := r.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recordService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Records imported successfully", result)
}
