package handlers

import (
	"net/http"

	"canteen-system/internal/domain"
)

// MenuSource is the read-only menu lookup the handler needs.
type MenuSource interface {
	GetMenu() []domain.MenuItem
}

type MenuHandler struct {
	menu MenuSource
}

func NewMenuHandler(menu MenuSource) *MenuHandler {
	return &MenuHandler{menu: menu}
}

func (mh *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mh.menu.GetMenu())
}
