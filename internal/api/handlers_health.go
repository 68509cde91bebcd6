// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status  string        `json:"status" example:"ready"`
	Uptime  float64       `json:"uptime_seconds"`
	Profile string        `json:"profile,omitempty" example:"merged"`
	Catalog *CatalogStats `json:"catalog,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once a catalog snapshot is being served
//
// @Summary Kubernetes readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus "Service is ready"
// @Failure 503 {object} HealthStatus "No catalog loaded"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Uptime:  time.Since(h.startTime).Seconds(),
		Profile: h.engine.GetConfig().Profile,
	}

	snap := h.store.Current()
	if snap == nil {
		status.Status = "not_ready"
		status.Error = MsgCatalogNotLoaded
		writeJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	status.Status = "ready"
	status.Catalog = newCatalogStats(snap)
	writeJSON(w, http.StatusOK, status)
}
