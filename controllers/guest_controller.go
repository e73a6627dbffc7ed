package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/models"
	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type GuestController struct {
	guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{guests: guests}
}

type guestRequest struct {
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email"`
	Nationality    string `json:"nationality" binding:"required"`
}

func (r guestRequest) toModel() models.Guest {
	return models.Guest{
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Phone:          r.Phone,
		Email:          r.Email,
		Nationality:    r.Nationality,
	}
}

func (ctl *GuestController) CreateGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	guest, err := ctl.guests.Add(req.toModel())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (ctl *GuestController) GetGuests(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctl.guests.GetAll())
}

func (ctl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	guest, err := ctl.guests.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	guest := req.toModel()
	guest.ID = id
	if err := ctl.guests.Update(guest); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.guests.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
