package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) upsertPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.upsertPersons").Msg("no user ID was given")
		http.Error(w, "no user ID provided", http.StatusBadRequest)
		return
	}

	var upsertRequest models.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertRequest); err != nil {
		log.Err(err).Str("func", "*Handler.upsertPersons").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the token decides whose contacts are written, not the body
	upsertRequest.UserID = userID

	if err := h.services.PersonService.UpsertPersons(ctx, upsertRequest); err != nil {
		log.Err(err).Str("func", "*Handler.upsertPersons").Msg("error upserting persons")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listPersons").Msg("no user ID was given")
		http.Error(w, "no user ID provided", http.StatusBadRequest)
		return
	}

	var listRequest models.ListRequest
	if err := json.NewDecoder(r.Body).Decode(&listRequest); err != nil {
		log.Err(err).Str("func", "*Handler.listPersons").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	listRequest.UserID = userID

	persons, err := h.services.PersonService.ListPersons(ctx, listRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPersons").Msg("error listing persons")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := models.ListResponse{
		Persons: persons,
		Length:  len(persons),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) deletePersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deletePersons").Msg("no user ID was given")
		http.Error(w, "no user ID provided", http.StatusBadRequest)
		return
	}

	var deleteRequest models.DeletePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&deleteRequest); err != nil {
		log.Err(err).Str("func", "*Handler.deletePersons").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deleteRequest.UserID = userID

	if err := h.services.PersonService.DeletePersons(ctx, deleteRequest); err != nil {
		log.Err(err).Str("func", "*Handler.deletePersons").Msg("error deleting persons")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
