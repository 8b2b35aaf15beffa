// Package server exposes the analysis pipeline over HTTP: an upload
// form for browsers and JSON endpoints for everything else.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"wordslurp/internal/keywords"
	"wordslurp/internal/pdf"
	"wordslurp/internal/summary"
	"wordslurp/internal/wordbag"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// bounds on the requested number of words, as the form validates
	minTopN = 1
	maxTopN = 1000

	defaultTopN      = 100
	defaultSentences = 5
	defaultKeywords  = 25
)

type Config struct {
	UploadDir      string
	MaxUploadBytes int64
}

type Server struct {
	cfg  Config
	bag  *wordbag.Bag
	tmpl *template.Template
}

func New(cfg Config) (*Server, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	// one bag sized to the largest permitted N; handlers slice it down
	opts := wordbag.Defaults()
	opts.TopN = maxTopN
	bag, err := wordbag.New(opts)
	if err != nil {
		return nil, err
	}

	funcs := template.FuncMap{"inc": func(i int) int { return i + 1 }}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{cfg: cfg, bag: bag, tmpl: tmpl}, nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Post("/", s.handleAnalyzeForm)
	r.Post("/api/words", s.handleWords)
	r.Post("/api/keywords", s.handleKeywords)
	r.Post("/api/summary", s.handleSummary)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true,"service":"wordslurpd"}`))
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderIndex(w, http.StatusOK, "")
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	if err := s.parseUpload(w, r); err != nil {
		s.renderIndex(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := formInt(r, "num_words", defaultTopN, minTopN, maxTopN)
	if err != nil {
		s.renderIndex(w, http.StatusBadRequest, err.Error())
		return
	}

	text, name, err := s.slurp(r)
	if err != nil {
		s.renderIndex(w, http.StatusBadRequest, err.Error())
		return
	}

	words, err := s.bag.Process(text)
	if err != nil {
		s.renderIndex(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n < len(words) {
		words = words[:n]
	}

	data := struct {
		Filename string
		Words    []wordbag.WordCount
	}{Filename: name, Words: words}
	if err := s.tmpl.ExecuteTemplate(w, "results.html", data); err != nil {
		logrus.Errorf("render results: %v", err)
	}
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	if err := s.parseUpload(w, r); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	n, err := formInt(r, "num_words", defaultTopN, minTopN, maxTopN)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	text, name, err := s.slurp(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	words, err := s.bag.Process(text)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}
	if n < len(words) {
		words = words[:n]
	}
	writeJSON(w, map[string]any{"filename": name, "words": words})
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	if err := s.parseUpload(w, r); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	n, err := formInt(r, "limit", defaultKeywords, 1, maxTopN)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	text, name, err := s.slurp(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, map[string]any{"filename": name, "keywords": keywords.Extract(text, n, 0)})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if err := s.parseUpload(w, r); err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	n, err := formInt(r, "sentences", defaultSentences, 1, 50)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	method := summary.Method(r.FormValue("method"))
	if method == "" {
		method = summary.LexRank
	}

	text, name, err := s.slurp(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	sentences, err := summary.Summarize(text, method, n)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, map[string]any{"filename": name, "sentences": sentences})
}

// parseUpload caps the request body and parses the multipart form.
// Must run before any form value is read so the cap actually applies.
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return fmt.Errorf("upload too large or malformed: %w", err)
	}
	return nil
}

// slurp pulls the uploaded PDF out of the parsed request, extracts its
// text, and removes the temporary file. The returned name is the
// client's original filename.
func (s *Server) slurp(r *http.Request) (string, string, error) {
	src, hdr, err := r.FormFile("pdf_file")
	if err != nil {
		return "", "", fmt.Errorf("no file selected")
	}
	defer src.Close()

	if hdr.Filename == "" {
		return "", "", fmt.Errorf("no file selected")
	}
	if !strings.EqualFold(filepath.Ext(hdr.Filename), ".pdf") {
		return "", "", fmt.Errorf("invalid file type, please upload a PDF")
	}

	path, err := s.save(src, hdr)
	if err != nil {
		return "", "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logrus.Warnf("remove %s: %v", path, err)
		}
	}()

	text, err := pdf.Extract(path, pdf.AllPages)
	if err != nil {
		return "", "", fmt.Errorf("could not read PDF: %w", err)
	}
	return text, hdr.Filename, nil
}

func (s *Server) save(src multipart.File, hdr *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s_%s.pdf", secureFilename(hdr.Filename), uuid.NewString()[:8])
	path := filepath.Join(s.cfg.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	logrus.Infof("saved upload %s", path)
	return path, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// secureFilename strips the path and extension from a client-supplied
// filename and squashes anything that doesn't belong on a filesystem.
func secureFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "upload"
	}
	if len(base) > 64 {
		base = base[:64]
	}
	return base
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, flash string) {
	w.WriteHeader(status)
	data := struct{ Flash string }{Flash: flash}
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		logrus.Errorf("render index: %v", err)
	}
}

func formInt(r *http.Request, field string, def, min, max int) (int, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("%s must be a number between %d and %d", field, min, max)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("write response: %v", err)
	}
}

func jsonError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
