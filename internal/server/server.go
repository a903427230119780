package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/lbo-calculator/internal/calculator"
	"github.com/iwvelando/lbo-calculator/internal/config"
	"github.com/iwvelando/lbo-calculator/pkg/constants"
	"github.com/iwvelando/lbo-calculator/pkg/format"
	"github.com/iwvelando/lbo-calculator/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger       *zap.Logger
	defaults     calculator.Request
	maxBodyBytes int64
	version      string
}

// NewHandler constructs the HTTP handler that serves the web form and the
// calculation API.
func NewHandler(logger *zap.Logger, defaults calculator.Request, maxBodyBytes int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodyBytes <= 0 {
		maxBodyBytes = constants.DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, defaults: defaults, maxBodyBytes: maxBodyBytes, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Get("/defaults", h.handleDefaults)
		r.Post("/export", h.handleExport)
		r.Get("/version", h.handleVersion)
	})

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

type calculateResponse struct {
	calculator.Response
	Formatted formattedResult `json:"formatted"`
	CSV       string          `json:"csv"`
	Duration  string          `json:"duration"`
}

// formattedResult carries the display strings for every cell of the table so
// the form page does not reimplement currency formatting.
type formattedResult struct {
	Rows     []formattedRow `json:"rows"`
	Multiple string         `json:"multiple,omitempty"`
	Payment  string         `json:"payment"`
	Ratio    string         `json:"ratio,omitempty"`
}

type formattedRow struct {
	Year      int    `json:"year"`
	Cashflow  string `json:"cashflow"`
	Payment   string `json:"payment"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req calculator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodyBytes), "server.handleCalculate")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleCalculate")
		return
	}

	result, err := calculator.Compute(h.logger, req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCalculate")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("calculation computed",
		zap.String("op", "server.handleCalculate"),
		zap.Int("rows", len(result.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Response:  result,
		Formatted: buildFormatted(result),
		CSV:       output.CsvString(result),
		Duration:  elapsed.String(),
	})
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.defaults)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req calculator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleExport")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleExport")
		return
	}

	yamlBytes, err := yaml.Marshal(config.FromRequest(req))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func buildFormatted(result calculator.Response) formattedResult {
	formatted := formattedResult{
		Payment: format.Currency(result.DebtService.Payment),
	}
	if result.Multiple != nil {
		formatted.Multiple = format.Multiple(*result.Multiple)
	}
	if result.DebtService.Ratio != nil {
		formatted.Ratio = format.Multiple(*result.DebtService.Ratio)
	}
	formatted.Rows = make([]formattedRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		formatted.Rows = append(formatted.Rows, formattedRow{
			Year:      row.Year,
			Cashflow:  format.Currency(row.Cashflow),
			Payment:   format.Currency(row.Payment),
			Principal: format.Currency(row.Principal),
			Interest:  format.Currency(row.Interest),
		})
	}
	return formatted
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
