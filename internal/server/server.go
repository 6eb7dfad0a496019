// Package server exposes the offer calculator over HTTP for the presentation
// layer. The calculator itself stays pure; this package only collects inputs
// and renders the structured result as JSON.
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

	"github.com/daisuke-ai/miana-calc/internal/config"
	"github.com/daisuke-ai/miana-calc/internal/offers"
	"github.com/daisuke-ai/miana-calc/pkg/constants"
	"github.com/daisuke-ai/miana-calc/pkg/finance"
	"github.com/daisuke-ai/miana-calc/pkg/output"
	"github.com/daisuke-ai/miana-calc/pkg/validation"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the offer API.
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

	router := httprouter.New()
	router.HandlerFunc(http.MethodPost, "/api/offers", h.handleOffers)
	router.HandlerFunc(http.MethodPost, "/api/offers/upload", h.handleOffersUpload)
	router.HandlerFunc(http.MethodGet, "/api/config/defaults", h.handleDefaults)
	router.HandlerFunc(http.MethodGet, "/api/version", h.handleVersion)

	return router
}

type offersResponse struct {
	Offers   []offers.OfferResult `json:"offers"`
	CSV      string               `json:"csv"`
	Warnings []string             `json:"warnings,omitempty"`
	Duration string               `json:"duration"`
}

// handleOffers computes offers from a JSON payload shaped like the YAML
// configuration; omitted sections fall back to the default assumption table.
func (h *handler) handleOffers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleOffers")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	// Round-trip through YAML so the viper loader applies the same default
	// layering as the CLI path.
	configBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode request: %v", err), "server.handleOffers")
		return
	}

	h.runOffers(w, configBytes, start, "server.handleOffers")
}

// handleOffersUpload computes offers from an uploaded YAML configuration
// file.
func (h *handler) handleOffersUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleOffersUpload")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleOffersUpload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handleOffersUpload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleOffersUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handleOffersUpload")
		return
	}

	h.runOffers(w, buf.Bytes(), start, "server.handleOffersUpload")
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	defaults := config.DefaultConfiguration()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"assumptions": defaults.Assumptions,
		"offers":      defaults.Offers,
		"thresholds":  defaults.Thresholds,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runOffers(w http.ResponseWriter, configBytes []byte, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	results, err := offers.ComputeOffers(h.logger, *cfg)
	if err != nil {
		status := http.StatusInternalServerError
		var invalidErr *validation.InvalidInputError
		var calcErr *finance.CalculationError
		if errors.As(err, &invalidErr) || errors.As(err, &calcErr) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, err.Error(), op)
		return
	}

	elapsed := time.Since(start)

	response := offersResponse{
		Offers:   results,
		CSV:      output.CsvString(results),
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("offers computed",
		zap.String("op", op),
		zap.Int("scenarios", len(response.Offers)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("offer request failed",
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
