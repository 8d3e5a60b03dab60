// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/internal/utils"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxBodySize caps request bodies of the goals collection.
const maxBodySize = 1 << 20

// listGoals answers GET /goals?ownerId=N with the owner's records. A missing
// ownerId means the authenticated owner.
func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, err := h.queryOwner(r)
	if err != nil {
		log.Err(err).Msg("list goals rejected")
		writeError(w, err)
		return
	}

	records, err := h.services.GoalService.List(r.Context(), ownerID)
	if err != nil {
		log.Err(err).Msg("list goals failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// createGoal answers POST /goals with {"serverId": "..."}. A zero ownerId in
// the body is filled from the token.
func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	var req models.CreateRequest[models.SavingsGoal]
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding create request")
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidBody, err))
		return
	}

	switch {
	case req.OwnerID == 0:
		req.OwnerID = ownerID
	case req.OwnerID != ownerID:
		log.Warn().Int64("owner_id", req.OwnerID).Msg("create goal for a foreign owner")
		writeError(w, ErrOwnerMismatch)
		return
	}

	record, err := h.services.GoalService.Create(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("create goal failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("server_id", record.ServerID).Msg("goal created")
	utils.WriteJSON(w, models.CreateResponse{ServerID: record.ServerID}, http.StatusCreated)
}

// updateGoal answers PUT /goals/{serverId} with the stored record. Fields
// absent from the body keep their values.
func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	serverID := chi.URLParam(r, "serverId")
	if serverID == "" {
		writeError(w, ErrMissingServerID)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		log.Err(err).Msg("error reading update body")
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidBody, err))
		return
	}

	record, err := h.services.GoalService.Update(r.Context(), ownerID, serverID, body)
	if err != nil {
		log.Err(err).Str("server_id", serverID).Msg("update goal failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// deleteGoal answers DELETE /goals/{serverId} with 204.
func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	serverID := chi.URLParam(r, "serverId")
	if serverID == "" {
		writeError(w, ErrMissingServerID)
		return
	}

	if err := h.services.GoalService.Delete(r.Context(), ownerID, serverID); err != nil {
		log.Err(err).Str("server_id", serverID).Msg("delete goal failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) queryOwner(r *http.Request) (int64, error) {
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	raw := r.URL.Query().Get("ownerId")
	if raw == "" {
		return ownerID, nil
	}

	requested, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || requested <= 0 {
		return 0, ErrInvalidOwnerID
	}
	if requested != ownerID {
		return 0, ErrOwnerMismatch
	}
	return requested, nil
}
