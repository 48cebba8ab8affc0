package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/medscan/internal/application"
	"github.com/bryanwahyu/medscan/internal/domain/ai"
	"github.com/bryanwahyu/medscan/internal/domain/analysis"
)

// Service packages an upload with the system prompt and relays it to the
// generative client. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	client    ai.Client
	prompt    string
	clock     application.Clock
	location  *time.Location
	inspector analysis.DocumentInspector
	logger    *slog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the clock used for response timestamps.
func WithClock(c application.Clock) Option { return func(s *Service) { s.clock = c } }

// WithLocation sets the time zone of the rendered timestamp.
func WithLocation(loc *time.Location) Option { return func(s *Service) { s.location = loc } }

// WithInspector enables PDF page inspection for logging.
func WithInspector(i analysis.DocumentInspector) Option {
	return func(s *Service) { s.inspector = i }
}

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

func NewService(client ai.Client, prompt string, opts ...Option) *Service {
	s := &Service{
		client: client,
		prompt: prompt,
		clock:  application.SystemClock{},
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Analyze validates the upload, sends [prompt, file] to the client and
// stamps the returned text with the response time.
func (s *Service) Analyze(ctx context.Context, f analysis.UploadedFile) (analysis.Result, error) {
	if f.Empty() {
		return analysis.Result{}, analysis.ErrNoFile
	}
	if !analysis.IsSupportedMIME(f.MIMEType) {
		return analysis.Result{}, fmt.Errorf("%w: %s", analysis.ErrUnsupportedType, f.MIMEType)
	}

	log := s.logger.With(
		"analysis_id", uuid.NewString(),
		"mime_type", f.MIMEType,
		"size", f.Size,
	)

	if f.MIMEType == analysis.MIMETypePDF && s.inspector != nil {
		if pages, err := s.inspector.PageCount(f.Content); err != nil {
			log.WarnContext(ctx, "pdf inspection failed", "error", err)
		} else {
			log = log.With("pages", pages)
		}
	}

	log.InfoContext(ctx, "sending file to ai")
	start := time.Now()

	parts := []ai.Part{
		ai.TextPart(s.prompt),
		ai.InlinePart(f.MIMEType, f.Content),
	}
	text, err := s.client.Generate(ctx, parts)
	if err != nil {
		log.ErrorContext(ctx, "ai analysis failed", "error", err, "duration", time.Since(start))
		return analysis.Result{}, fmt.Errorf("generate analysis: %w", err)
	}

	log.InfoContext(ctx, "ai analysis received", "duration", time.Since(start), "chars", len(text))
	return analysis.Result{
		Analysis:         text,
		AnalysisDateTime: application.FormatTimestamp(s.clock.Now(), s.location),
	}, nil
}
