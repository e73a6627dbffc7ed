package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/models"
	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type ExtrasController struct {
	extras *services.ExtrasService
}

func NewExtrasController(extras *services.ExtrasService) *ExtrasController {
	return &ExtrasController{extras: extras}
}

type laundryRequest struct {
	Description   string  `json:"description"`
	Pieces        int     `json:"pieces" binding:"required"`
	PricePerPiece float64 `json:"pricePerPiece"`
}

func (ctl *ExtrasController) AddLaundry(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req laundryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.extras.AddLaundry(id, req.Description, req.Pieces, req.PricePerPiece); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"reservationId": id})
}

type restaurantRequest struct {
	MealType  string  `json:"mealType" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unitPrice"`
}

func (ctl *ExtrasController) AddRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.extras.AddRestaurant(id, req.MealType, req.Quantity, req.UnitPrice); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"reservationId": id})
}

type robeSaleRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

func (ctl *ExtrasController) AddRobeSale(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req robeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.extras.AddRobeSale(id, req.RoomID, req.Size, req.Quantity); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"reservationId": id})
}

func (ctl *ExtrasController) RemoveService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index parameter")
		return
	}
	if err := ctl.extras.Remove(id, index); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reservationId": id, "removed": index})
}

func (ctl *ExtrasController) GetServices(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	attached, err := ctl.extras.ServicesFor(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	views := make([]models.ServiceView, 0, len(attached))
	for i, svc := range attached {
		views = append(views, models.ViewOf(i, svc))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

func (ctl *ExtrasController) GetServicesTotal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	total, err := ctl.extras.TotalCost(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reservationId": id, "total": total})
}
