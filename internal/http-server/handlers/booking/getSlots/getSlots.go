package getSlots

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"brandsite/internal/lib/api/response"
	"brandsite/internal/models"
	"brandsite/internal/slots"
)

type SlotsResponse struct {
	response.Response
	Slots []models.Slot `json:"slots"`
}

// New serves the list of offered booking slots. The list is recomputed from
// the clock on every call; the store is never touched.
func New(log *slog.Logger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getSlots.New"

		log = log.With(slog.String("op", op))

		available := slots.Upcoming(now())

		log.Info("slots generated", slog.Int("count", len(available)))

		render.JSON(w, r, SlotsResponse{
			Response: response.OK(""),
			Slots:    available,
		})
	}
}
