package listContacts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"brandsite/internal/lib/api/response"
	"brandsite/internal/models"
)

type ContactsResponse struct {
	response.Response
	Contacts []models.Contact `json:"contacts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactsLister
type ContactsLister interface {
	Contacts() []models.Contact
}

func New(log *slog.Logger, lister ContactsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.listContacts.New"

		log = log.With(slog.String("op", op))

		contacts := lister.Contacts()

		log.Info("contact messages retrieved", slog.Int("count", len(contacts)))

		render.JSON(w, r, ContactsResponse{
			Response: response.OK(""),
			Contacts: contacts,
		})
	}
}
