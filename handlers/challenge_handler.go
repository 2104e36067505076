package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"oceanKeeperAPI/internal/activity"
	"oceanKeeperAPI/internal/catalog"
	"oceanKeeperAPI/middleware"
	"oceanKeeperAPI/services"
)

type ChallengeHandler struct {
	catalog           *catalog.Catalog
	submissionService *services.SubmissionService
	userService       *services.UserService
}

func NewChallengeHandler(cat *catalog.Catalog, submissionService *services.SubmissionService, userService *services.UserService) *ChallengeHandler {
	return &ChallengeHandler{
		catalog:           cat,
		submissionService: submissionService,
		userService:       userService,
	}
}

// GetChallenges lists the active challenge catalog. Legacy ids still
// verify but are not advertised.
func (h *ChallengeHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"challenges": h.catalog.Active(),
	})
}

// VerifyChallenge accepts a proof submission and returns the award
// summary. Submissions are auto-approved; see ActivityRecord.Status.
func (h *ChallengeHandler) VerifyChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req activity.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.submissionService.SubmitChallenge(ctx, userID, &req, time.Now())
	if err != nil {
		middleware.RecordSubmission("rejected")
		respondWithAppError(w, err)
		return
	}

	middleware.RecordSubmission("accepted")
	respondWithJSON(w, http.StatusOK, result)
}

// GetActivities returns the caller's submission history, newest first.
func (h *ChallengeHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	records, err := h.userService.GetActivities(ctx, userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"activities": records,
	})
}
