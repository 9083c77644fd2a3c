package controllers

import (
	"net/http"

	"authd/app/dto"
	"authd/app/services"
)

type AdminController struct{ Accounts *services.AccountService }

func NewAdminController(accounts *services.AccountService) *AdminController {
	return &AdminController{Accounts: accounts}
}

func (c *AdminController) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Accounts.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	views := make([]dto.AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, dto.NewAccountView(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, views)
}
