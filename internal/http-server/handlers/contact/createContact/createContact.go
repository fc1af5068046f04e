package createContact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"brandsite/internal/lib/api/response"
	"brandsite/internal/lib/logger/sl"
	"brandsite/internal/models"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required,min=10"`
}

type ContactResponse struct {
	response.Response
	Contact models.Contact `json:"contact"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactSaver
type ContactSaver interface {
	CreateContact(c models.Contact) models.Contact
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	ContactReceived(c models.Contact) error
}

func New(log *slog.Logger, contacts ContactSaver, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.createContact.New"

		log = log.With(slog.String("op", op))

		var req ContactRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		contact := contacts.CreateContact(models.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})

		log.Info("contact message saved", slog.Int("id", contact.ID))

		// The record is already persisted at this point; a failed send is
		// still reported as a 500.
		if err = notifier.ContactReceived(contact); err != nil {
			log.Error("failed to send contact notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to process message"))

			return
		}

		log.Info("contact notifications sent", slog.String("email", contact.Email))

		responseCreated(w, r, contact)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, contact models.Contact) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ContactResponse{
		Response: response.OK("message received"),
		Contact:  contact,
	})
}
