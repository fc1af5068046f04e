package createAccount

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

type AccountRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type AccountResponse struct {
	response.Response
	Account models.Account `json:"account"`
}

// The store does not enforce username uniqueness; the handler checks before
// creating.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AccountProvider
type AccountProvider interface {
	CreateAccount(username, password string) models.Account
	GetAccountByUsername(username string) (models.Account, bool)
}

func New(log *slog.Logger, accounts AccountProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.createAccount.New"

		log = log.With(slog.String("op", op))

		var req AccountRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("username", req.Username))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if _, exists := accounts.GetAccountByUsername(req.Username); exists {
			log.Info("username already taken", slog.String("username", req.Username))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("username already taken"))

			return
		}

		account := accounts.CreateAccount(req.Username, req.Password)

		log.Info("account created", slog.Int("id", account.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, AccountResponse{
			Response: response.OK("account created"),
			Account:  account,
		})
	}
}
