package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/E11SH/RENTHUB/internal/auth"
	"github.com/E11SH/RENTHUB/internal/users/service"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	httputil "github.com/E11SH/RENTHUB/pkg/http"
	"github.com/E11SH/RENTHUB/pkg/logger"
	"github.com/E11SH/RENTHUB/pkg/model"
)

type UserHandler struct {
	service service.UserService
	authmw  *auth.Middleware
	log     *logger.Logger
}

func NewUserHandler(service service.UserService, authmw *auth.Middleware, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		authmw:  authmw,
		log:     log,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteMsg(w, http.StatusCreated, "User registered successfully")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, resp)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
		return
	}

	user, err := h.service.GetByID(r.Context(), identity.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, user.Public())
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/users/register", h.Register)
	router.POST("/api/users/login", h.Login)
	router.GET("/api/users/me", h.authmw.Authenticate(h.Me))
}
