// Package server implements the translation endpoint the client talks to.
//
// Endpoints:
//   - POST /api/translate - translate {text, source_lang, target_lang}
//   - GET  /api/health    - liveness plus model and input limit
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Rorical/RoriLingo/internal/cache"
	"github.com/Rorical/RoriLingo/internal/langs"
)

const (
	DefaultMaxInputChars = 2000
	DefaultCacheSize     = 200

	// MaxRequestBodySize bounds the JSON body of /api/translate.
	MaxRequestBodySize = 64 * 1024
)

// Backend performs the actual translation.
type Backend interface {
	Translate(ctx context.Context, text string, source, target langs.Code) (string, error)
	Detect(ctx context.Context, text string) (langs.Code, error)
	Model() string
}

type Options struct {
	Backend       Backend
	MaxInputChars int
	CacheSize     int
	Logger        *log.Logger
	// RequestsPerMinute per client IP; zero disables limiting.
	RequestsPerMinute int
}

type cacheKey struct {
	text   string
	source langs.Code
	target langs.Code
}

type Server struct {
	backend       Backend
	maxInputChars int
	cache         *cache.LRU[cacheKey, string]
	logger        *log.Logger
	limiter       *RateLimiter
}

func New(opts Options) *Server {
	s := &Server{
		backend:       opts.Backend,
		maxInputChars: opts.MaxInputChars,
		logger:        opts.Logger,
	}
	if s.maxInputChars <= 0 {
		s.maxInputChars = DefaultMaxInputChars
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	s.cache = cache.NewLRU[cacheKey, string](size)
	if s.logger == nil {
		s.logger = log.Default()
	}
	if opts.RequestsPerMinute > 0 {
		s.limiter = NewRateLimiter(opts.RequestsPerMinute)
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	var h http.Handler = mux
	if s.limiter != nil {
		h = RateLimitMiddleware(s.limiter)(h)
	}
	return LoggingMiddleware(s.logger)(h)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation        string      `json:"translation"`
	TranslatedText     string      `json:"translated_text"`
	SourceLang         langs.Code  `json:"source_lang"`
	TargetLang         langs.Code  `json:"target_lang"`
	DetectedSourceLang *langs.Code `json:"detected_source_lang"`
	Cached             bool        `json:"cached"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	// A missing or malformed body is treated like an empty one.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("request body too large (max %d bytes)", tooLarge.Limit),
			})
			return
		}
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
		return
	}
	if len([]rune(text)) > s.maxInputChars {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("text too long (max %d)", s.maxInputChars)})
		return
	}

	source, ok := parseLang(req.SourceLang, langs.DefaultSource)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unsupported source_lang %q", req.SourceLang)})
		return
	}
	target, ok := parseLang(req.TargetLang, langs.DefaultTarget)
	if !ok || target == langs.Auto {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unsupported target_lang %q", req.TargetLang)})
		return
	}

	var detected *langs.Code
	if source == langs.Auto {
		code, err := s.backend.Detect(r.Context(), text)
		if err != nil {
			s.logger.Printf("[WARN] detection failed: %v", err)
			code = langs.Auto
		}
		detected = &code
		source = code
	}

	key := cacheKey{text: text, source: source, target: target}
	if cached, ok := s.cache.Get(key); ok {
		writeJSON(w, http.StatusOK, translateResponse{
			Translation:        cached,
			TranslatedText:     cached,
			SourceLang:         source,
			TargetLang:         target,
			DetectedSourceLang: detected,
			Cached:             true,
		})
		return
	}

	translated, err := s.backend.Translate(r.Context(), text, source, target)
	if err != nil {
		s.logger.Printf("[ERROR] translation_error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "translation failed", Details: err.Error()})
		return
	}
	s.cache.Set(key, translated)

	writeJSON(w, http.StatusOK, translateResponse{
		Translation:        translated,
		TranslatedText:     translated,
		SourceLang:         source,
		TargetLang:         target,
		DetectedSourceLang: detected,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"model":           s.backend.Model(),
		"max_input_chars": s.maxInputChars,
	})
}

func parseLang(raw string, fallback langs.Code) (langs.Code, bool) {
	if strings.TrimSpace(raw) == "" {
		return fallback, true
	}
	return langs.Normalize(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
