package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/E11SH/RENTHUB/internal/auth"
	"github.com/E11SH/RENTHUB/internal/bookings/service"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	httputil "github.com/E11SH/RENTHUB/pkg/http"
	"github.com/E11SH/RENTHUB/pkg/logger"
	"github.com/E11SH/RENTHUB/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	authmw  *auth.Middleware
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, authmw *auth.Middleware, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		authmw:  authmw,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
		return
	}

	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, booking)
}

func (h *BookingHandler) GetMy(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
		return
	}

	bookings, err := h.service.GetMyBookings(r.Context(), identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, bookings)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", h.authmw.Authenticate(h.Create))
	router.GET("/api/bookings/my", h.authmw.Authenticate(h.GetMy))
}
