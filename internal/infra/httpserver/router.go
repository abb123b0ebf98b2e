package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	appcontracts "github.com/icislabs/contract-workbench/internal/application/contracts"
	"github.com/icislabs/contract-workbench/internal/domain/analysis"
	"github.com/icislabs/contract-workbench/internal/domain/drafts"
	"github.com/icislabs/contract-workbench/internal/domain/extract"
	"github.com/icislabs/contract-workbench/internal/middleware"
)

type Router struct {
	svc       *appcontracts.Service
	maxUpload int64
}

// NewRouter mounts the workbench API: analysis, draft synthesis, draft store.
func NewRouter(svc *appcontracts.Service, maxUpload int64) http.Handler {
	r := &Router{svc: svc, maxUpload: maxUpload}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Post("/analyze", r.wrap(r.handleAnalyze))
	mux.Post("/analyze/file", r.wrap(r.handleAnalyzeFile))
	mux.Post("/drafts/synthesize", r.wrap(r.handleSynthesizeDraft))
	mux.Post("/drafts", r.wrap(r.handleSaveDraft))
	mux.Get("/drafts", r.wrap(r.handleListDrafts))
	mux.Get("/drafts/{id}", r.wrap(r.handleGetDraft))

	return mux
}

// httpError carries a status code chosen by a handler.
type httpError struct {
	code int
	msg  string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &httpError{code: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var he *httpError
		switch {
		case errors.As(err, &he):
			writeError(w, he.code, he.msg)
		case errors.Is(err, drafts.ErrNotFound), errors.Is(err, sql.ErrNoRows):
			writeError(w, http.StatusNotFound, "not found")
		case errors.Is(err, extract.ErrUnsupportedType):
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// POST /analyze
// Body: {"text": "..."} — empty or missing text analyzes the sample contract.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return badRequest("invalid JSON body: %v", err)
	}

	res := r.svc.Analyze(body.Text)
	middleware.IncrementAnalyses()
	return writeJSON(w, res)
}

// POST /analyze/file
// Multipart form: file + optional lang (tesseract code, default "eng").
func (r *Router) handleAnalyzeFile(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		return badRequest("invalid multipart body: %v", err)
	}

	file, hdr, err := req.FormFile("file")
	if err != nil {
		return badRequest("file required")
	}
	defer file.Close()

	name := filepath.Base(hdr.Filename)
	if err := middleware.ValidateUploadName(name); err != nil {
		return badRequest("%v", err)
	}
	lang := req.FormValue("lang")
	if err := middleware.ValidateLang(lang); err != nil {
		return badRequest("%v", err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	tmpPath := filepath.Join(os.TempDir(), "icis-"+uuid.New().String()+ext)
	dst, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	middleware.IncrementExtractions()
	out, err := r.svc.AnalyzeFile(req.Context(), tmpPath, name, lang)
	if err != nil {
		middleware.IncrementExtractionsFailed()
		if errors.Is(err, extract.ErrUnsupportedType) {
			return err
		}
		return &httpError{code: http.StatusUnprocessableEntity, msg: err.Error()}
	}

	middleware.IncrementAnalyses()
	return writeJSON(w, out)
}

// POST /drafts/synthesize
// Body: {"base_text": "...", "issues": [...], "author": "..."}
func (r *Router) handleSynthesizeDraft(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		BaseText string           `json:"base_text"`
		Issues   []analysis.Issue `json:"issues"`
		Author   string           `json:"author"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}

	text := r.svc.SynthesizeDraft(body.BaseText, body.Issues, body.Author)
	return writeJSON(w, map[string]string{"draft_text": text})
}

// POST /drafts
// Body: {"title": "...", "content": "...", "issues": [...]} — content required.
func (r *Router) handleSaveDraft(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Title   string           `json:"title"`
		Content string           `json:"content"`
		Issues  []analysis.Issue `json:"issues"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	if strings.TrimSpace(body.Content) == "" {
		return badRequest("content required")
	}
	if err := middleware.ValidateTitle(body.Title); err != nil {
		return badRequest("%v", err)
	}

	d, err := r.svc.SaveDraft(req.Context(), body.Title, body.Content, body.Issues)
	if err != nil {
		return err
	}
	middleware.IncrementDraftsSaved()
	return writeJSON(w, d)
}

// GET /drafts?limit=20
func (r *Router) handleListDrafts(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	list, err := r.svc.ListDrafts(req.Context(), limit)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*drafts.Draft{}
	}
	return writeJSON(w, list)
}

// GET /drafts/{id}
func (r *Router) handleGetDraft(w http.ResponseWriter, req *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		return badRequest("invalid draft id")
	}

	d, err := r.svc.GetDraft(req.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, d)
}
