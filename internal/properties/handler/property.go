package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/E11SH/RENTHUB/internal/auth"
	"github.com/E11SH/RENTHUB/internal/properties/service"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	httputil "github.com/E11SH/RENTHUB/pkg/http"
	"github.com/E11SH/RENTHUB/pkg/logger"
	"github.com/E11SH/RENTHUB/pkg/model"
)

type PropertyHandler struct {
	service service.PropertyService
	authmw  *auth.Middleware
	log     *logger.Logger
}

func NewPropertyHandler(service service.PropertyService, authmw *auth.Middleware, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		authmw:  authmw,
		log:     log,
	}
}

func (h *PropertyHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	properties, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, properties)
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	property, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, property)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
		return
	}

	var property model.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.Create(r.Context(), identity, &property); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
		return
	}

	var updates model.PropertyUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	updated, err := h.service.Update(r.Context(), identity, ps.ByName("id"), &updates)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, updated)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, apperrors.Unauthorized("No token, authorization denied"))
		return
	}

	if err := h.service.Delete(r.Context(), identity, ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteMsg(w, http.StatusOK, "Property deleted")
}

func (h *PropertyHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/properties", h.GetAll)
	router.GET("/api/properties/:id", h.GetByID)
	router.POST("/api/properties", h.authmw.Authenticate(h.Create))
	router.PUT("/api/properties/:id", h.authmw.Authenticate(h.Update))
	router.DELETE("/api/properties/:id", h.authmw.Authenticate(h.Delete))
}
