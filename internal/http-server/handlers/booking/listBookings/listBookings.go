package listBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"brandsite/internal/lib/api/response"
	"brandsite/internal/models"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	Bookings() []models.Booking
}

func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		bookings := lister.Bookings()

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(""),
			Bookings: bookings,
		})
	}
}
