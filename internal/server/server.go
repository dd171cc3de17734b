// Package server exposes the blend planner over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openblend/blend-planner/internal/planner"
	"github.com/openblend/blend-planner/internal/solver"
	"github.com/openblend/blend-planner/pkg/constants"
	"github.com/openblend/blend-planner/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger       *zap.Logger
	lp           solver.Solver
	maxBodyBytes int64
	version      string
}

// NewHandler constructs the HTTP handler that serves the blend API. The
// solver is shared across requests; each request builds and owns its own
// program, so no locking is needed.
func NewHandler(logger *zap.Logger, lp solver.Solver, maxBodyBytes int64, version string) http.Handler {
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

	h := &handler{logger: logger, lp: lp, maxBodyBytes: maxBodyBytes, version: trimmedVersion}

	mux := http.NewServeMux()

	// Blend API endpoint
	mux.HandleFunc("/api/blend", h.handleBlend)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Liveness endpoint
	mux.HandleFunc("/api/health", h.handleHealth)

	return mux
}

func (h *handler) handleBlend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var problem planner.Problem
	if err := json.NewDecoder(r.Body).Decode(&problem); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodyBytes))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode problem: %v", err))
		return
	}

	outcome, err := planner.Solve(h.logger, problem, h.lp)
	if err != nil {
		if validation.IsValidation(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("solver failure: %v", err))
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("blend computed",
		zap.String("op", "server.handleBlend"),
		zap.Int("ingredients", len(problem.Ingredients)),
		zap.String("termination", outcome.Termination),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, outcome)
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

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Error("blend request failed",
		zap.String("op", "server.handleBlend"),
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
