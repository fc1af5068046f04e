package createBooking

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

type BookingRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Message string `json:"message"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	CreateBooking(b models.Booking) models.Booking
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	BookingReceived(b models.Booking) error
}

func New(log *slog.Logger, bookings BookingSaver, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

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

		booking := bookings.CreateBooking(models.Booking{
			Name:    req.Name,
			Email:   req.Email,
			Company: req.Company,
			Message: req.Message,
			Date:    req.Date,
			Time:    req.Time,
		})

		log.Info("booking saved", slog.Int("id", booking.ID))

		// The record is already persisted at this point; a failed send is
		// still reported as a 500.
		if err = notifier.BookingReceived(booking); err != nil {
			log.Error("failed to send booking notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to process booking"))

			return
		}

		log.Info("booking notifications sent", slog.String("email", booking.Email))

		responseCreated(w, r, booking)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK("booking request received"),
		Booking:  booking,
	})
}
