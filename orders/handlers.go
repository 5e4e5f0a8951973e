package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"velour/models"
	"velour/utils"

	"github.com/julienschmidt/httprouter"
)

// CreateOrder handles POST /api/orders.
func (s *Service) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input models.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	order, err := s.Create(ctx, userID, input)
	if err != nil {
		log.Println("CreateOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GetOrders handles GET /api/orders.
func (s *Service) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := s.List(ctx, userID)
	if err != nil {
		log.Println("GetOrders error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder handles GET /api/orders/:orderid.
func (s *Service) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := s.Get(ctx, userID, ps.ByName("orderid"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("GetOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
