package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mmrzaf/seeder/internal/app"
	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/export"
	"github.com/mmrzaf/seeder/internal/infra/repos/schemas"
	"github.com/mmrzaf/seeder/internal/logging"
)

type Handler struct {
	seeder   *app.Seeder
	maxCount int
	logger   *logging.Logger
}

func NewHandler(seeder *app.Seeder, maxCount int, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{seeder: seeder, maxCount: maxCount, logger: logger.WithComponent("api")}
}

// Routes registers every endpoint on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/types", h.ListTypes)
	mux.HandleFunc("GET /api/v1/schemas", h.ListSchemas)
	mux.HandleFunc("GET /api/v1/schemas/{id}", h.GetSchema)
	mux.HandleFunc("POST /api/v1/generate", h.Generate)
	mux.HandleFunc("GET /api/v1/runs", h.ListRuns)
}

type typeInfo struct {
	Name    string `json:"name"`
	AliasOf string `json:"alias_of,omitempty"`
}

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	reg := h.seeder.Registry()
	names := reg.List()
	out := make([]typeInfo, 0, len(names))
	for _, n := range names {
		info := typeInfo{Name: n}
		if target, ok := reg.AliasOf(n); ok {
			info.AliasOf = target
		}
		out = append(out, info)
	}
	writeJSON(w, out)
}

func (h *Handler) ListSchemas(w http.ResponseWriter, r *http.Request) {
	list, err := h.seeder.ListSchemas()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	sc, err := h.seeder.LoadSchema(r.PathValue("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, schemas.ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, sc)
}

type generateResponse struct {
	Seed       int64            `json:"seed"`
	Count      int              `json:"count"`
	FieldsHash string           `json:"fields_hash"`
	RunHash    string           `json:"run_hash"`
	Records    domain.RecordSet `json:"records"`
}

// Generate returns records as JSON (the default), CSV or an SQL INSERT
// statement. The seed used is echoed in the X-Seeder-Seed header.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	w.Header().Set("X-Request-ID", reqID)

	var req domain.GenerateRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	res, err := h.seeder.GenerateRequest(&req, h.maxCount)
	if err != nil {
		if errors.Is(err, app.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("generate.failed", map[string]any{"request_id": reqID, "error": err})
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("X-Seeder-Seed", strconv.FormatInt(res.Seed, 10))

	var (
		buf         bytes.Buffer
		contentType string
	)
	switch req.Format {
	case "", domain.FormatJSON:
		records := res.Records
		if records == nil {
			records = domain.RecordSet{}
		}
		writeJSON(w, generateResponse{
			Seed:       res.Seed,
			Count:      len(records),
			FieldsHash: res.FieldsHash,
			RunHash:    res.RunHash,
			Records:    records,
		})
		return
	case domain.FormatCSV:
		contentType = "text/csv"
		err = export.WriteCSV(&buf, res.Records)
	case domain.FormatSQL:
		contentType = "application/sql"
		err = export.WriteSQL(&buf, res.Records, req.Table, req.Dialect)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, export.ErrNoData) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	list, err := h.seeder.Runs(limit, r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, app.ErrHistoryDisabled) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSONStrict(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
