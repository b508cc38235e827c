// Package server exposes the prepayment calculator over HTTP for
// presentation-layer callers.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prepaytools/loan-prepay/internal/config"
	"github.com/prepaytools/loan-prepay/pkg/amortize"
	"github.com/prepaytools/loan-prepay/pkg/constants"
	"github.com/prepaytools/loan-prepay/pkg/output"
	"github.com/prepaytools/loan-prepay/pkg/validation"
)

type handler struct {
	logger         *zap.Logger
	engine         *amortize.Engine
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		engine:         amortize.NewEngine(logger),
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Calculation API endpoint (JSON parameters)
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Calculation API endpoint for YAML config documents
	mux.HandleFunc("/api/config/calculate", h.handleCalculateConfig)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calculateResponse struct {
	Result   *amortize.CalculationResult `json:"result"`
	CSV      string                      `json:"csv"`
	Warnings []string                    `json:"warnings,omitempty"`
	Duration string                      `json:"duration"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	var params amortize.LoanParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleCalculate")
			return
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode parameters: %v", err), "server.handleCalculate")
		return
	}

	if err := validation.ValidateLoanParameters(params); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCalculate")
		return
	}

	h.runCalculation(w, params, validation.LoanParameterWarnings(params), start, "server.handleCalculate")
}

func (h *handler) handleCalculateConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	// Buffer the body first; the config loader does not surface read errors,
	// so an oversized request has to be caught here.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "server.handleCalculateConfig")
			return
		}
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to read configuration: %v", err), "server.handleCalculateConfig")
		return
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCalculateConfig")
		return
	}

	params, err := conf.LoanParameters()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCalculateConfig")
		return
	}

	if err := validation.ValidateLoanParameters(params); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleCalculateConfig")
		return
	}

	h.runCalculation(w, params, conf.ValidateConfiguration(), start, "server.handleCalculateConfig")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runCalculation(w http.ResponseWriter, params amortize.LoanParameters, warnings []string, start time.Time, op string) {
	result, err := h.engine.Calculate(params)
	if err != nil {
		status := http.StatusInternalServerError
		var validationErr *amortize.ValidationError
		if errors.As(err, &validationErr) || errors.Is(err, amortize.ErrTermNotFound) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, err.Error(), op)
		return
	}

	elapsed := time.Since(start)

	response := calculateResponse{
		Result:   result,
		CSV:      output.CsvString(result),
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("calculation computed",
		zap.String("op", op),
		zap.String("method", params.RepaymentMethod.String()),
		zap.String("strategy", params.PrepaymentStrategy.String()),
		zap.Int("scheduleEntries", len(result.Schedule)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
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
