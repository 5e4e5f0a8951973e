package cart

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"velour/utils"

	"github.com/julienschmidt/httprouter"
)

// GetCart handles GET /api/cart.
func (s *Service) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		log.Println("GetCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cart)
}

// AddToCart handles POST /api/cart/add?product_id=&quantity=.
func (s *Service) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid quantity")
			return
		}
		quantity = n
	}

	summary, err := s.Add(ctx, userID, productID, quantity)
	if errors.Is(err, ErrProductNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("AddToCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// RemoveFromCart handles DELETE /api/cart/remove/:productid.
func (s *Service) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := s.Remove(ctx, userID, ps.ByName("productid"))
	if errors.Is(err, ErrCartNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Println("RemoveFromCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}
