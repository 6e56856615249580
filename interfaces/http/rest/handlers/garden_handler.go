package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gardenbook/application/commands"
	"gardenbook/application/commands/bus"
	"gardenbook/application/queries"
	querybus "gardenbook/application/queries/bus"
	"gardenbook/pkg/common"
	pkgerrors "gardenbook/pkg/errors"
	"gardenbook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GardenHandler handles garden-related HTTP requests
type GardenHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *GardenHandler {
	return &GardenHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateGardenRequest represents the request body for creating a garden.
// Plants intentionally has no omitempty handling on decode: a missing
// field decodes to nil and is rejected, while an explicit empty list is
// a valid garden with no plants yet.
type CreateGardenRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Location string   `json:"location" validate:"required,max=200"`
	Plants   []string `json:"plants"`
	Image    string   `json:"image" validate:"required"`
}

// UpdateGardenRequest represents the request body for a wholesale update
type UpdateGardenRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Location string   `json:"location" validate:"required,max=200"`
	Plants   []string `json:"plants"`
	Image    string   `json:"image" validate:"required"`
}

// AddPlantRequest represents the request body for adding a plant
type AddPlantRequest struct {
	Plant string `json:"plant" validate:"required,max=200"`
}

// UpdateImageRequest represents the request body for replacing the image
type UpdateImageRequest struct {
	Image string `json:"image"`
}

// CreateGarden handles POST /gardens
func (h *GardenHandler) CreateGarden(w http.ResponseWriter, r *http.Request) {
	var req CreateGardenRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	callerID, ok := common.GetCallerID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Generate the ID up front so the created record can be returned
	gardenID := uuid.New().String()

	cmd := commands.CreateGardenCommand{
		GardenID: gardenID,
		Owner:    callerID,
		Name:     req.Name,
		Location: req.Location,
		Plants:   req.Plants,
		Image:    req.Image,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create garden",
			zap.String("owner", callerID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to create garden")
		return
	}

	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.respondAppError(w, err, "Failed to retrieve created garden")
		return
	}

	h.respondJSON(w, http.StatusCreated, view)
}

// GetGarden handles GET /gardens/{gardenID}
func (h *GardenHandler) GetGarden(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	if gardenID == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID is required")
		return
	}

	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.logger.Error("Failed to get garden",
			zap.String("gardenID", gardenID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to retrieve garden")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// ListGardens handles GET /gardens. With ?mine=true only the caller's
// gardens are returned; by default the listing spans all owners.
func (h *GardenHandler) ListGardens(w http.ResponseWriter, r *http.Request) {
	query := queries.ListGardensQuery{}

	if r.URL.Query().Get("mine") == "true" {
		callerID, ok := common.GetCallerID(r.Context())
		if !ok {
			h.respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		query.Owner = callerID
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list gardens", zap.Error(err))
		h.respondAppError(w, err, "Failed to list gardens")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// UpdateGarden handles PUT /gardens/{gardenID}
func (h *GardenHandler) UpdateGarden(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	if gardenID == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID is required")
		return
	}

	var req UpdateGardenRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cmd := commands.UpdateGardenCommand{
		GardenID: gardenID,
		Name:     req.Name,
		Location: req.Location,
		Plants:   req.Plants,
		Image:    req.Image,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update garden",
			zap.String("gardenID", gardenID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to update garden")
		return
	}

	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.respondAppError(w, err, "Failed to retrieve updated garden")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// DeleteGarden handles DELETE /gardens/{gardenID}. The response carries
// the record as it existed immediately before deletion.
func (h *GardenHandler) DeleteGarden(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	if gardenID == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID is required")
		return
	}

	callerID, ok := common.GetCallerID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Capture the record before it goes away
	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.respondAppError(w, err, "Failed to retrieve garden")
		return
	}

	cmd := commands.DeleteGardenCommand{
		GardenID: gardenID,
		Caller:   callerID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete garden",
			zap.String("gardenID", gardenID),
			zap.String("caller", callerID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to delete garden")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// ListPlants handles GET /gardens/{gardenID}/plants
func (h *GardenHandler) ListPlants(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	if gardenID == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID is required")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListPlantsQuery{GardenID: gardenID})
	if err != nil {
		h.logger.Error("Failed to list plants",
			zap.String("gardenID", gardenID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to list plants")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// AddPlant handles POST /gardens/{gardenID}/plants
func (h *GardenHandler) AddPlant(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	if gardenID == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID is required")
		return
	}

	var req AddPlantRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	callerID, ok := common.GetCallerID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cmd := commands.AddPlantCommand{
		GardenID: gardenID,
		Plant:    req.Plant,
		Caller:   callerID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to add plant",
			zap.String("gardenID", gardenID),
			zap.String("plant", req.Plant),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to add plant")
		return
	}

	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.respondAppError(w, err, "Failed to retrieve updated garden")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// RemovePlant handles DELETE /gardens/{gardenID}/plants/{plant}
func (h *GardenHandler) RemovePlant(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	plant := chi.URLParam(r, "plant")
	if gardenID == "" || plant == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID and plant are required")
		return
	}

	callerID, ok := common.GetCallerID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cmd := commands.RemovePlantCommand{
		GardenID: gardenID,
		Plant:    plant,
		Caller:   callerID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to remove plant",
			zap.String("gardenID", gardenID),
			zap.String("plant", plant),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to remove plant")
		return
	}

	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.respondAppError(w, err, "Failed to retrieve updated garden")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// UpdateImage handles PUT /gardens/{gardenID}/image
func (h *GardenHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	gardenID := chi.URLParam(r, "gardenID")
	if gardenID == "" {
		h.respondError(w, http.StatusBadRequest, "Garden ID is required")
		return
	}

	var req UpdateImageRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cmd := commands.UpdateImageCommand{
		GardenID: gardenID,
		Image:    req.Image,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update image",
			zap.String("gardenID", gardenID),
			zap.Error(err),
		)
		h.respondAppError(w, err, "Failed to update image")
		return
	}

	view, err := h.fetchGarden(r, gardenID)
	if err != nil {
		h.respondAppError(w, err, "Failed to retrieve updated garden")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// fetchGarden reads the current state of a garden through the query bus
func (h *GardenHandler) fetchGarden(r *http.Request, gardenID string) (queries.GardenView, error) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGardenQuery{GardenID: gardenID})
	if err != nil {
		return queries.GardenView{}, err
	}
	view, ok := result.(queries.GardenView)
	if !ok {
		return queries.GardenView{}, pkgerrors.NewInternalError("unexpected query result type")
	}
	return view, nil
}

// Helper methods

func (h *GardenHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *GardenHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps typed application errors onto HTTP status codes,
// falling back to 500 with a generic message for anything untyped
func (h *GardenHandler) respondAppError(w http.ResponseWriter, err error, fallback string) {
	var appErr *pkgerrors.AppError
	if errors.As(err, &appErr) {
		h.respondJSON(w, appErr.HTTPStatus, map[string]interface{}{
			"error":   true,
			"type":    string(appErr.Type),
			"message": appErr.Message,
			"code":    appErr.HTTPStatus,
		})
		return
	}
	h.respondError(w, http.StatusInternalServerError, fallback)
}
