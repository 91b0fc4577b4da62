// Package handler exposes the store over HTTP: routing, middleware and the
// JSON envelope every endpoint answers with.
package handler

import (
	"net/http"

	"fsanano/store-api/internal/errs"
	"fsanano/store-api/internal/model"
	"fsanano/store-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Handler struct {
	router *chi.Mux

	users    *resource[model.User, model.UserInput]
	products *resource[model.Product, model.ProductInput]
	sales    *resource[model.Sale, model.SaleInput]
}

func NewHandler(
	log zerolog.Logger,
	users Service[model.User, model.UserInput],
	products Service[model.Product, model.ProductInput],
	sales Service[model.Sale, model.SaleInput],
) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RealIP)
	router.Use(requestLogger(log))
	router.Use(accessLog)
	router.Use(recoverer)
	router.Use(compressor())

	h := &Handler{
		router: router,
		users: &resource[model.User, model.UserInput]{
			svc:            users,
			validateCreate: validation.UserCreate,
			validateUpdate: validation.UserUpdate,
			msg:            userMessages,
		},
		products: &resource[model.Product, model.ProductInput]{
			svc:            products,
			validateCreate: validation.ProductCreate,
			validateUpdate: validation.ProductUpdate,
			msg:            productMessages,
		},
		sales: &resource[model.Sale, model.SaleInput]{
			svc:            sales,
			validateCreate: validation.SaleCreate,
			validateUpdate: validation.SaleUpdate,
			msg:            saleMessages,
		},
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	// set before the subrouters are mounted so they inherit them
	h.router.NotFound(h.NotFound)
	h.router.MethodNotAllowed(h.MethodNotAllowed)

	h.router.Get("/health", h.HealthCheck)

	h.router.Route("/api", func(r chi.Router) {
		r.Route("/users", h.users.routes)
		r.Route("/products", h.products.routes)
		r.Route("/sales", h.sales.routes)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, envelope{Error: errs.MsgRouteNotFound})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, envelope{Error: errs.MsgMethodNotAllowed})
}
