package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	domai "github.com/bryanwahyu/medscan/internal/domain/ai"
	"github.com/bryanwahyu/medscan/internal/domain/analysis"
	"github.com/bryanwahyu/medscan/internal/middleware"
)

// Multipart field the browser client appends the file under.
const uploadField = "image"

// Messages returned to clients. Upstream detail is logged, never echoed.
const (
	msgNoFile      = "No image file uploaded."
	msgUnsupported = "Unsupported file type. Please upload JPG, PNG, or PDF."
	msgTooLarge    = "File is too large."
	msgRateLimited = "Too many requests. Please try again after some time."
	msgUnreadable  = "Unable to process image content. The image might be corrupt or an unsupported format for AI analysis."
	msgFailed      = "Failed to analyze image. Please try again."
)

// Analyzer is the use case behind POST /analyze.
type Analyzer interface {
	Analyze(ctx context.Context, f analysis.UploadedFile) (analysis.Result, error)
}

// Options configures NewRouter. Zero values disable the matching feature.
type Options struct {
	StaticDir      string
	MaxUploadBytes int64
	AllowedOrigins []string
	HealthCheckers map[string]middleware.HealthChecker
	Logger         *slog.Logger
}

type Router struct {
	analyzer  Analyzer
	maxUpload int64
	logger    *slog.Logger
}

func NewRouter(analyzer Analyzer, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 20 << 20
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := &Router{analyzer: analyzer, maxUpload: maxUpload, logger: logger}
	mux := chi.NewRouter()

	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(middleware.LoggingMiddleware(logger))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/health", middleware.LivenessHandler)
	mux.Get("/ready", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze", r.wrap(r.handleAnalyze))

	if opts.StaticDir != "" {
		mux.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap translates handler errors into the JSON error contract and records
// the analysis outcome.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			middleware.RecordAnalysis(middleware.OutcomeSucceeded)
			return
		}

		status, msg, outcome := classify(err)
		middleware.RecordAnalysis(outcome)

		log := r.logger.With("status", status, "request_id", chimw.GetReqID(req.Context()))
		if status >= http.StatusInternalServerError {
			log.ErrorContext(req.Context(), "analyze failed", "error", err)
		} else {
			log.WarnContext(req.Context(), "analyze rejected", "error", err)
		}
		writeError(w, msg, status)
	}
}

func classify(err error) (int, string, middleware.Outcome) {
	switch {
	case errors.Is(err, analysis.ErrNoFile):
		return http.StatusBadRequest, msgNoFile, middleware.OutcomeRejected
	case errors.Is(err, analysis.ErrUnsupportedType):
		return http.StatusBadRequest, msgUnsupported, middleware.OutcomeRejected
	case errors.Is(err, analysis.ErrFileTooLarge):
		return http.StatusBadRequest, msgTooLarge, middleware.OutcomeRejected
	case errors.Is(err, domai.ErrQuotaExceeded):
		return http.StatusTooManyRequests, msgRateLimited, middleware.OutcomeRateLimited
	case errors.Is(err, domai.ErrUnreadableContent):
		return http.StatusBadRequest, msgUnreadable, middleware.OutcomeUnreadable
	default:
		return http.StatusInternalServerError, msgFailed, middleware.OutcomeFailed
	}
}

// POST /analyze
// Body: multipart/form-data with the file under "image".
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	file, err := r.readUpload(w, req)
	if err != nil {
		return err
	}

	res, err := r.analyzer.Analyze(req.Context(), file)
	if err != nil {
		return err
	}

	// status is committed from here on, so a failed write is only logged
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		r.logger.WarnContext(req.Context(), "write analyze response",
			"error", err, "request_id", chimw.GetReqID(req.Context()))
	}
	return nil
}

// readUpload pulls the single file out of the multipart body. The form is
// kept in memory and any spill-over is removed before returning.
func (r *Router) readUpload(w http.ResponseWriter, req *http.Request) (analysis.UploadedFile, error) {
	if req.ContentLength > r.maxUpload {
		return analysis.UploadedFile{}, analysis.ErrFileTooLarge
	}
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return analysis.UploadedFile{}, analysis.ErrFileTooLarge
		}
		return analysis.UploadedFile{}, errors.Join(analysis.ErrNoFile, err)
	}
	defer req.MultipartForm.RemoveAll()

	f, header, err := req.FormFile(uploadField)
	if err != nil {
		return analysis.UploadedFile{}, errors.Join(analysis.ErrNoFile, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return analysis.UploadedFile{}, errors.Join(analysis.ErrNoFile, err)
	}

	return analysis.UploadedFile{
		Name:     middleware.SanitizeFilename(header.Filename),
		MIMEType: middleware.DetectMIMEType(header.Header.Get("Content-Type"), data),
		Content:  data,
		Size:     int64(len(data)),
	}, nil
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
