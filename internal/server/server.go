// Package server exposes the point-comparison engine over HTTP.
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

	"github.com/iwvelando/mortgage-points/internal/config"
	"github.com/iwvelando/mortgage-points/internal/optimizer"
	"github.com/iwvelando/mortgage-points/internal/report"
	"github.com/iwvelando/mortgage-points/pkg/constants"
	"github.com/iwvelando/mortgage-points/pkg/output"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the report API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Report API endpoint (YAML configuration body)
	mux.HandleFunc("/api/report", h.handleReport)

	// Schedule API endpoint; same input with amortization schedules forced on
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type reportResponse struct {
	Name        string         `json:"name"`
	StartDate   string         `json:"startDate"`
	DownPayment float64        `json:"downPayment"`
	Results     []pointsResult `json:"results"`
	Optimal     *optimalResult `json:"optimal,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
	CSV         string         `json:"csv"`
	Duration    string         `json:"duration"`
}

type pointsResult struct {
	Points         float64         `json:"points"`
	EffectiveRate  float64         `json:"effectiveRate"`
	ClosingCosts   float64         `json:"closingCosts"`
	MonthlyPayment float64         `json:"monthlyPayment"`
	Months         int             `json:"months"`
	TotalCost      float64         `json:"totalCost"`
	Schedule       []scheduleEntry `json:"schedule,omitempty"`
}

type scheduleEntry struct {
	Date      string  `json:"date"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type optimalResult struct {
	Points    float64 `json:"points"`
	TotalCost float64 `json:"totalCost"`
	Months    int     `json:"months"`
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	h.runReport(w, r, false, "server.handleReport")
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	h.runReport(w, r, true, "server.handleSchedule")
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

func (h *handler) runReport(w http.ResponseWriter, r *http.Request, forceSchedule bool, op string) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.respondError(w, http.StatusBadRequest, "empty configuration", op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(body))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()
	if forceSchedule {
		cfg.Output.Schedule = true
	}

	result, err := report.Generate(h.logger, cfg)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to compute report: %v", err), op)
		return
	}

	if cfg.Optimizer != nil {
		runner, err := optimizer.NewRunner(h.logger, cfg)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to initialize optimizer: %v", err), op)
			return
		}
		optimization, err := runner.Run()
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("optimizer execution failed: %v", err), op)
			return
		}
		optimization.Apply(result)
	}

	elapsed := time.Since(start)
	response := buildReportResponse(result, warnings, elapsed)

	h.logger.Info("report computed",
		zap.String("op", op),
		zap.Int("points_options", len(response.Results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func buildReportResponse(result *report.Report, warnings []string, elapsed time.Duration) reportResponse {
	response := reportResponse{
		Name:        result.Name,
		StartDate:   result.StartDate,
		DownPayment: result.DownPayment,
		Results:     make([]pointsResult, 0, len(result.Results)),
		Warnings:    warnings,
		CSV:         output.CsvString(result),
		Duration:    elapsed.String(),
	}

	for _, item := range result.Results {
		converted := pointsResult{
			Points:         item.Points,
			EffectiveRate:  item.EffectiveRate,
			ClosingCosts:   item.ClosingCosts,
			MonthlyPayment: item.MonthlyPayment,
			Months:         item.Months,
			TotalCost:      item.TotalCost,
		}
		for _, entry := range item.Schedule {
			converted.Schedule = append(converted.Schedule, scheduleEntry{
				Date:      entry.Date,
				Payment:   entry.Payment,
				Interest:  entry.Interest,
				Principal: entry.Principal,
				Balance:   entry.Balance,
			})
		}
		response.Results = append(response.Results, converted)
	}

	if result.Optimal != nil {
		response.Optimal = &optimalResult{
			Points:    result.Optimal.Points,
			TotalCost: result.Optimal.TotalCost,
			Months:    result.Optimal.Months,
		}
	}
	return response
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("report request failed",
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
