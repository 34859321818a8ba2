package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jumga/ledger/internal/http/account"
	"github.com/jumga/ledger/internal/http/settlement"
)

func New(
	settlementsV1 *settlement.Handler,
	accountsV1 *account.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/settlements", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settlementsV1.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			accountsV1.Routes(r)
		})
	})

	return router
}
