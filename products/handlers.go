package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"velour/models"
	"velour/rdx"
	"velour/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	maxListLimit = 200

	// Listings go stale as products are created, so their cache entries
	// carry a TTL. A single product never changes after creation.
	listCacheTTL = 2 * time.Minute
)

// GetProducts handles GET /api/products with optional ?category and ?limit.
func (s *Service) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category := r.URL.Query().Get("category")
	limit := utils.ParseLimit(r, defaultListLimit, maxListLimit)

	// Try cache
	cacheKey := fmt.Sprintf("products:%s:%d", category, limit)
	if cached, _ := rdx.RdxGet(cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	list, err := s.List(ctx, category, limit)
	if err != nil {
		log.Println("GetProducts error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}

	data, err := json.Marshal(list)
	if err != nil {
		log.Println("GetProducts marshal error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}
	rdx.SetWithExpiry(cacheKey, string(data), listCacheTTL)
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetProduct handles GET /api/products/:productid.
func (s *Service) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	cacheKey := "product:" + productID
	if cached, _ := rdx.RdxGet(cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	product, err := s.Get(ctx, productID)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		log.Println("GetProduct marshal error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}
	rdx.RdxSet(cacheKey, string(data))
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// CreateProduct handles POST /api/products.
func (s *Service) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product payload")
		return
	}
	if input.Name == "" || input.Price < 0 || input.StockQuantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}

	product, err := s.Create(ctx, input)
	if err != nil {
		log.Println("CreateProduct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// InitData handles POST /api/init-data.
func (s *Service) InitData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	msg, err := s.Seed(ctx)
	if err != nil {
		log.Println("InitData error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to seed sample data")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": msg})
}
