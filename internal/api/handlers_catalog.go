// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/serendip/internal/catalog"
	"github.com/tomtom215/serendip/internal/logging"
)

// GetCatalog returns statistics for the active snapshot.
//
// @Summary Catalog statistics
// @Tags Catalog
// @Produce json
// @Success 200 {object} CatalogStats
// @Failure 503 {object} ErrorResponse "Catalog not loaded"
// @Router /api/v1/catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Snapshot()
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCatalogStats(snap))
}

// ReloadCatalog re-reads the catalog source and swaps in the new snapshot.
// On failure the previous snapshot keeps serving.
//
// @Summary Force a catalog reload
// @Tags Catalog
// @Produce json
// @Success 200 {object} CatalogStats "New snapshot"
// @Failure 429 {object} ErrorResponse "Reload throttled"
// @Failure 502 {object} ErrorResponse "Catalog reload failed"
// @Failure 503 {object} ErrorResponse "Reload not available"
// @Router /api/v1/catalog/reload [post]
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		respondError(w, r, http.StatusServiceUnavailable, MsgReloadUnavailable, nil)
		return
	}

	snap, err := h.reloader.Reload(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrReloadThrottled) {
			respondDomainError(w, r, err)
			return
		}
		respondError(w, r, http.StatusBadGateway, MsgReloadFailed, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("catalog_id", snap.ID()).
		Int("articles", snap.Len()).
		Msg("catalog reloaded via API")
	writeJSON(w, http.StatusOK, newCatalogStats(snap))
}
