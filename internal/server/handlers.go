package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/calyptra/verdant/internal/catalog"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

var validLight = map[string]struct{}{
	catalog.LightLow:    {},
	catalog.LightMedium: {},
	catalog.LightHigh:   {},
}

func (s *Server) handleListPlants(w http.ResponseWriter, r *http.Request) {
	filter := Filter{Search: r.URL.Query().Get("search")}

	if raw := r.URL.Query().Get("category"); raw != "" {
		for _, category := range strings.Split(raw, ",") {
			if category = strings.TrimSpace(category); category != "" {
				filter.Categories = append(filter.Categories, category)
			}
		}
	}

	switch r.URL.Query().Get("inStock") {
	case "true":
		v := true
		filter.InStock = &v
	case "false":
		v := false
		filter.InStock = &v
	}

	s.writeData(w, http.StatusOK, s.store.List(filter), "")
}

func (s *Server) handleCreatePlant(w http.ResponseWriter, r *http.Request) {
	var payload catalog.NewPlant
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if message := validateNewPlant(&payload); message != "" {
		s.writeError(w, http.StatusBadRequest, message)
		return
	}

	created := s.store.Create(payload)
	s.writeData(w, http.StatusCreated, created, "Plant added successfully")
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Quantity < 1 {
		s.writeError(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	}

	updated, err := s.store.Purchase(id, body.Quantity)
	if err != nil {
		var insufficient *InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			s.writeError(w, http.StatusBadRequest, insufficient.Error())
		case errors.Is(err, ErrNotFound):
			s.writeError(w, http.StatusNotFound, "Plant not found")
		default:
			s.logger.Error("purchase failed", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	message := fmt.Sprintf("Purchased %d x %s", body.Quantity, updated.Name)
	s.writeData(w, http.StatusOK, updated, message)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, s.store.Categories(), "")
}

// validateNewPlant mirrors the storefront's form rules; the server is the
// final arbiter. Returns an empty string when the payload is acceptable.
func validateNewPlant(payload *catalog.NewPlant) string {
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return "Plant name is required"
	}
	if len(payload.Name) > maxNameLength {
		return fmt.Sprintf("Plant name must be less than %d characters", maxNameLength)
	}
	if payload.Price < 0 {
		return "Price must be a positive number"
	}
	if payload.Quantity < 0 {
		return "Quantity must be a non-negative integer"
	}

	categories := payload.Categories[:0]
	for _, category := range payload.Categories {
		if category = strings.TrimSpace(category); category != "" {
			categories = append(categories, category)
		}
	}
	payload.Categories = categories
	if len(payload.Categories) == 0 {
		return "At least one category is required"
	}

	if len(payload.Description) > maxDescriptionLength {
		return fmt.Sprintf("Description must be less than %d characters", maxDescriptionLength)
	}

	if payload.Light == "" {
		payload.Light = catalog.LightMedium
	}
	if _, ok := validLight[payload.Light]; !ok {
		return "Light must be one of Low, Medium, High"
	}

	return ""
}

type dataEnvelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

func (s *Server) writeData(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: data, Message: message}); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(messageEnvelope{Message: message}); err != nil {
		s.logger.Error("encode error response", zap.Error(err))
	}
}
