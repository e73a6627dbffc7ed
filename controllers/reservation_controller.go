package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type ReservationController struct {
	reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

type reservationRequest struct {
	ClientID   uint   `json:"clientId" binding:"required"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	GuestCount int    `json:"guestCount"`
	RoomIDs    []uint `json:"roomIds" binding:"required"`
	GuestIDs   []uint `json:"guestIds"`
}

func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	res, err := ctl.reservations.Create(req.ClientID, checkIn, checkOut, req.GuestCount, req.RoomIDs, req.GuestIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// GetReservations lists reservations; ?clientId= and ?date= filter them.
func (ctl *ReservationController) GetReservations(c *gin.Context) {
	if raw := c.Query("clientId"); raw != "" {
		id, ok := queryID(c, "clientId", raw)
		if !ok {
			return
		}
		utils.JSONSuccess(c, http.StatusOK, ctl.reservations.GetByClient(id))
		return
	}
	if raw := c.Query("date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, ctl.reservations.GetByDate(date))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctl.reservations.GetAll())
}

func (ctl *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := ctl.reservations.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctl *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.reservations.Confirm(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": "confirmed"})
}

func (ctl *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.reservations.Cancel(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": "cancelled"})
}

func (ctl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.reservations.CheckIn(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": "checked_in"})
}

type checkOutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

func (ctl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req checkOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
			return
		}
	}
	invoice, err := ctl.reservations.CheckOut(id, req.PaymentMethod)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}
