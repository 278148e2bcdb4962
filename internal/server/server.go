package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jvelker/training-roi/internal/config"
	"github.com/jvelker/training-roi/internal/roi"
	"github.com/jvelker/training-roi/internal/store"
	"github.com/jvelker/training-roi/pkg/constants"
	"github.com/jvelker/training-roi/pkg/output"
	"github.com/jvelker/training-roi/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

const defaultHistoryPageSize = 20

type handler struct {
	logger        *zap.Logger
	store         store.Store
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the web UI and ROI API.
// A nil limiter disables rate limiting; a nil store disables history.
func NewHandler(logger *zap.Logger, st store.Store, maxUploadSize int64, version string, limiter *RateLimiter) http.Handler {
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

	h := &handler{logger: logger, store: st, maxUploadSize: maxUploadSize, version: trimmedVersion}

	limited := func(next http.HandlerFunc) http.Handler {
		if limiter == nil {
			return next
		}
		return RateLimitMiddleware(limiter, next)
	}

	mux := http.NewServeMux()

	// ROI API endpoint (JSON scenario)
	mux.Handle("/api/roi", limited(h.handleCompute))

	// ROI API endpoint (YAML config upload)
	mux.Handle("/api/roi/upload", limited(h.handleUpload))

	// Recent analyses
	mux.Handle("/api/history", limited(h.handleHistory))

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type computeRequest struct {
	Name string `json:"name"`
	roi.Scenario
}

type computeResponse struct {
	Name           string                    `json:"name,omitempty"`
	Scenario       roi.Scenario              `json:"scenario"`
	Result         roi.Result                `json:"result"`
	Recommendation roi.Recommendation        `json:"recommendation"`
	Cumulative     []float64                 `json:"cumulative"`
	Sensitivity    []roi.SensitivityPoint    `json:"sensitivity"`
	Narrative      []output.NarrativeSection `json:"narrative"`
	Warnings       []string                  `json:"warnings,omitempty"`
	Duration       string                    `json:"duration"`
}

type uploadResponse struct {
	Scenarios  []string               `json:"scenarios"`
	Reports    []output.Report        `json:"reports"`
	CSV        string                 `json:"csv"`
	Warnings   []string               `json:"warnings,omitempty"`
	Duration   string                 `json:"duration"`
	Config     map[string]interface{} `json:"config,omitempty"`
	ConfigYAML string                 `json:"configYaml,omitempty"`
}

type historyResponse struct {
	Analyses []store.Analysis `json:"analyses"`
}

func (h *handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode scenario: %v", err), "server.handleCompute")
		return
	}

	scenario := req.Scenario.Normalized()
	warnings, err := validation.CheckScenario(scenario)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("invalid scenario: %v", err), "server.handleCompute")
		return
	}

	result := roi.Compute(scenario)
	recommendation := roi.Recommend(result)

	h.saveAnalysis(r, "server.handleCompute", store.Analysis{
		ID:        store.NewID(),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC(),
		Scenario:  scenario,
		Result:    result,
		Verdict:   recommendation,
	})

	elapsed := time.Since(start)

	response := computeResponse{
		Name:           strings.TrimSpace(req.Name),
		Scenario:       scenario,
		Result:         result,
		Recommendation: recommendation,
		Cumulative:     roi.CumulativeMargin(result, constants.MonthsPerYear),
		Sensitivity:    roi.CloseRateSensitivity(scenario, result),
		Narrative:      output.Narrative(scenario, result),
		Warnings:       warnings,
		Duration:       elapsed.String(),
	}

	h.logger.Info("roi computed",
		zap.String("op", "server.handleCompute"),
		zap.Float64("roiPercentage", result.ROIPercentage),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err))
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	warnings := cfg.ValidateConfiguration()

	active := cfg.ActiveScenarios()
	if len(active) == 0 {
		h.respondError(w, http.StatusBadRequest, "configuration contains no active scenarios")
		return
	}

	reports := make([]output.Report, 0, len(active))
	for _, scenario := range active {
		engineScenario := scenario.ToROI()
		if _, err := validation.CheckScenario(engineScenario); err != nil {
			h.respondError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid scenario '%s': %v", scenario.Name, err))
			return
		}

		report := output.BuildReport(scenario.Name, engineScenario)
		reports = append(reports, report)

		h.saveAnalysis(r, "server.handleUpload", store.Analysis{
			ID:        store.NewID(),
			Name:      scenario.Name,
			CreatedAt: time.Now().UTC(),
			Scenario:  engineScenario,
			Result:    report.Result,
			Verdict:   report.Recommendation,
		})
	}

	elapsed := time.Since(start)

	response := uploadResponse{
		Scenarios:  extractScenarioNames(reports),
		Reports:    reports,
		CSV:        output.CsvString(reports),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		Config:     configMap,
		ConfigYAML: string(configBytes),
	}

	h.logger.Info("roi computed for uploaded config",
		zap.String("op", "server.handleUpload"),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.store == nil {
		h.writeJSON(w, http.StatusOK, historyResponse{Analyses: []store.Analysis{}})
		return
	}

	limit := defaultHistoryPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.respondErrorWithOp(w, http.StatusBadRequest,
				fmt.Sprintf("invalid limit %q", raw), "server.handleHistory")
			return
		}
		limit = parsed
	}

	analyses, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to read history: %v", err), "server.handleHistory")
		return
	}
	if analyses == nil {
		analyses = []store.Analysis{}
	}

	h.writeJSON(w, http.StatusOK, historyResponse{Analyses: analyses})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
		"formats": strings.Join(output.Formats(), ","),
	})
}

// saveAnalysis persists best-effort; a failed save never fails the request.
func (h *handler) saveAnalysis(r *http.Request, op string, analysis store.Analysis) {
	if h.store == nil {
		return
	}
	if err := h.store.Save(r.Context(), analysis); err != nil {
		h.logger.Warn("failed to save analysis",
			zap.String("op", op),
			zap.String("id", analysis.ID),
			zap.Error(err),
		)
	}
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleUpload")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("roi request failed",
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

func extractScenarioNames(reports []output.Report) []string {
	names := make([]string, 0, len(reports))
	for _, report := range reports {
		names = append(names, report.Name)
	}
	return names
}
