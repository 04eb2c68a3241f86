package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/GauravSharma9258/DBMS-Project/internal/metrics"
	"github.com/GauravSharma9258/DBMS-Project/internal/repository"
	"github.com/GauravSharma9258/DBMS-Project/internal/storage"
)

const autoAssignTimeout = 30 * time.Second

func (s *Server) respondStorageError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrStateConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("Operation failed", zap.String("operation", operation), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		respondError(w, http.StatusInternalServerError, "Something went wrong, please retry")
	}
}

func (s *Server) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	var donationRequest struct {
		FoodType        string   `json:"food_type"`
		Quantity        string   `json:"quantity"`
		CookingTime     string   `json:"cooking_time"`
		Address         string   `json:"address"`
		Phone           string   `json:"phone"`
		Latitude        *float64 `json:"latitude"`
		Longitude       *float64 `json:"longitude"`
		ExpiryTime      string   `json:"expiry_time"`
		DonationPhotos  []string `json:"donation_photos"`
		DonorToAdminMsg string   `json:"donor_to_admin_msg"`
	}

	if err := json.NewDecoder(r.Body).Decode(&donationRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cookingTime, err := time.Parse(time.RFC3339, donationRequest.CookingTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid cooking_time, use RFC3339")
		return
	}
	expiryTime, err := time.Parse(time.RFC3339, donationRequest.ExpiryTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid expiry_time, use RFC3339")
		return
	}

	donation, err := s.storage.CreateDonation(r.Context(), actingUser(r), storage.NewDonation{
		FoodType:        donationRequest.FoodType,
		Quantity:        donationRequest.Quantity,
		CookingTime:     cookingTime.UTC(),
		Address:         donationRequest.Address,
		Phone:           donationRequest.Phone,
		Latitude:        donationRequest.Latitude,
		Longitude:       donationRequest.Longitude,
		ExpiryTime:      expiryTime.UTC(),
		DonationPhotos:  donationRequest.DonationPhotos,
		DonorToAdminMsg: donationRequest.DonorToAdminMsg,
	})
	if err != nil {
		s.respondStorageError(w, "create_donation", err)
		return
	}

	// Candidate computation is best-effort and must never fail the
	// creation that already committed.
	go func(donationID string) {
		ctx, cancel := context.WithTimeout(context.Background(), autoAssignTimeout)
		defer cancel()
		if err := s.storage.AutoAssignCandidates(ctx, donationID); err != nil {
			s.logger.Error("Auto assignment failed",
				zap.String("donation_id", donationID), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("auto_assign").Inc()
		}
	}(donation.ID)

	respondJSON(w, http.StatusCreated, donation)
}

func (s *Server) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	donation, err := s.storage.GetDonation(r.Context(), donationID)
	if err != nil {
		s.respondStorageError(w, "get_donation", err)
		return
	}

	respondJSON(w, http.StatusOK, donation)
}

func (s *Server) handleDonationHistory(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	history, err := s.storage.GetDonationHistory(r.Context(), donationID)
	if err != nil {
		s.respondStorageError(w, "donation_history", err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleRespondToDonation(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	var respondRequest struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&respondRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	donation, err := s.storage.RespondToDonation(r.Context(), donationID, actingUser(r), storage.ResponseAction(respondRequest.Action))
	if err != nil {
		s.respondStorageError(w, "respond_to_donation", err)
		return
	}

	respondJSON(w, http.StatusOK, donation)
}

func (s *Server) handleMarkPickedUp(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	donation, err := s.storage.MarkPickedUp(r.Context(), donationID, actingUser(r))
	if err != nil {
		s.respondStorageError(w, "mark_picked_up", err)
		return
	}

	respondJSON(w, http.StatusOK, donation)
}

func (s *Server) handleMarkCollected(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	donation, err := s.storage.MarkCollected(r.Context(), donationID, actingUser(r))
	if err != nil {
		s.respondStorageError(w, "mark_collected", err)
		return
	}

	respondJSON(w, http.StatusOK, donation)
}

func (s *Server) handleRejectDonation(w http.ResponseWriter, r *http.Request) {
	donationID := mux.Vars(r)["id"]

	donation, err := s.storage.RejectDonation(r.Context(), donationID, actingUser(r))
	if err != nil {
		s.respondStorageError(w, "reject_donation", err)
		return
	}

	respondJSON(w, http.StatusOK, donation)
}

func (s *Server) handleDonorDonations(w http.ResponseWriter, r *http.Request) {
	donorID := mux.Vars(r)["donorID"]

	var statuses []repository.DonationStatus
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		for _, raw := range strings.Split(statusParam, ",") {
			status := repository.DonationStatus(strings.TrimSpace(raw))
			if !status.IsValid() {
				respondError(w, http.StatusBadRequest, "Invalid value for 'status' parameter")
				return
			}
			statuses = append(statuses, status)
		}
	}

	donations, err := s.storage.GetDonorDonations(r.Context(), donorID, statuses)
	if err != nil {
		s.respondStorageError(w, "donor_donations", err)
		return
	}

	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handlePurgeDonorDonations(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.PurgeDonorDonations(r.Context(), actingUser(r)); err != nil {
		s.respondStorageError(w, "purge_donor_donations", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Terminal donations removed",
	})
}

func (s *Server) handleAgentCollections(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["agentID"]

	donations, err := s.storage.GetAgentCollections(r.Context(), agentID)
	if err != nil {
		s.respondStorageError(w, "agent_collections", err)
		return
	}

	respondJSON(w, http.StatusOK, donations)
}

func (s *Server) handlePurgeAgentCollections(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.PurgeAgentCollections(r.Context(), actingUser(r)); err != nil {
		s.respondStorageError(w, "purge_agent_collections", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Collected donations removed",
	})
}

func (s *Server) handleAgentOffers(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["agentID"]

	donations, err := s.storage.GetOpenOffers(r.Context(), agentID)
	if err != nil {
		s.respondStorageError(w, "agent_offers", err)
		return
	}

	respondJSON(w, http.StatusOK, donations)
}
