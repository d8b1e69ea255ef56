// Package handlers wires the per-area HTTP handlers onto the chi router.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bankmock/bankmock/pkg/cards"
	backofficehandler "github.com/bankmock/bankmock/pkg/handlers/backoffice"
	cardshandler "github.com/bankmock/bankmock/pkg/handlers/cards"
	personshandler "github.com/bankmock/bankmock/pkg/handlers/persons"
	transfershandler "github.com/bankmock/bankmock/pkg/handlers/transfers"
	webhookshandler "github.com/bankmock/bankmock/pkg/handlers/webhooks"
	"github.com/bankmock/bankmock/pkg/middleware"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/transfers"
	"github.com/go-chi/chi/v5"
)

// Deps bundles the application services the HTTP surface exposes.
type Deps struct {
	Store     storage.Storage
	Engine    *cards.Service
	Transfers *transfers.Service
	Logger    *slog.Logger
}

// NewRouter mounts every route of the mock bank surface.
func NewRouter(deps Deps) http.Handler {
	personsH := personshandler.NewPersonsHandler(deps.Store)
	cardsH := cardshandler.NewCardsHandler(deps.Engine)
	transfersH := transfershandler.NewTransfersHandler(deps.Transfers)
	webhooksH := webhookshandler.NewWebhooksHandler(deps.Store)
	backofficeH := backofficehandler.NewBackofficeHandler(deps.Store, deps.Transfers)

	router := chi.NewRouter()
	if deps.Logger != nil {
		router.Use(middleware.NewStructuredLogger(deps.Logger))
	}

	router.Get("/persons", personsH.ListPersons)
	router.Get("/persons/{person_id}", personsH.GetPerson)

	router.Post("/persons/{person_id}/spend", cardsH.Spend)
	router.Post("/persons/{person_id}/reservations/{reservation_id}/resolve", cardsH.ResolveReservation)

	router.Post("/persons/{person_id}/transfers", transfersH.CreateTransfer)

	router.Post("/webhooks", webhooksH.Register)
	router.Get("/webhooks", webhooksH.List)
	router.Delete("/webhooks/{event_type}", webhooksH.Delete)

	router.Post("/backoffice/seed", backofficeH.Seed)
	router.Post("/backoffice/processQueuedBookings/{person_id}", backofficeH.ProcessQueuedBookings)
	router.Post("/backoffice/flush", backofficeH.Flush)

	return router
}
