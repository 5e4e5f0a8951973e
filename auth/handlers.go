package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"velour/utils"

	"github.com/julienschmidt/httprouter"
)

// Register handles POST /api/auth/register.
func (s *Service) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := s.RegisterUser(ctx, input)
	switch {
	case errors.Is(err, ErrInvalidEmail):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email format")
		return
	case errors.Is(err, ErrEmailTaken):
		utils.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	case err != nil:
		log.Printf("register error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// Login handles POST /api/auth/login.
func (s *Service) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	token, user, err := s.LoginUser(ctx, input.Email, input.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("login error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Me handles GET /api/auth/me.
func (s *Service) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	user, err := s.Resolve(ctx, tokenString)
	switch {
	case errors.Is(err, ErrInvalidToken):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	case errors.Is(err, ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		log.Printf("me error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user.Response())
}

// Logout handles POST /api/auth/logout and drops the cached token.
func (s *Service) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.LogoutUser(userID); err != nil {
		log.Printf("token cache remove failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}
