package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/models"
	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type RoomController struct {
	rooms   *services.RoomService
	minibar *services.MinibarService
}

func NewRoomController(rooms *services.RoomService, minibar *services.MinibarService) *RoomController {
	return &RoomController{rooms: rooms, minibar: minibar}
}

// GetRooms lists the catalog; ?status=available and ?type=suite filter it.
func (ctl *RoomController) GetRooms(c *gin.Context) {
	if c.Query("status") == string(models.RoomAvailable) {
		utils.JSONSuccess(c, http.StatusOK, ctl.rooms.GetAvailable())
		return
	}
	if t := c.Query("type"); t != "" {
		utils.JSONSuccess(c, http.StatusOK, ctl.rooms.GetByType(models.RoomType(t)))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctl.rooms.GetAll())
}

func (ctl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := ctl.rooms.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctl *RoomController) GetRoomByNumber(c *gin.Context) {
	room, err := ctl.rooms.GetByNumber(c.Param("number"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctl *RoomController) GetMinibar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	products, err := ctl.minibar.GetMinibar(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, products)
}

type consumptionRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

func (ctl *RoomController) RegisterConsumption(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req consumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	record, err := ctl.minibar.RegisterConsumption(id, req.ProductID, req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, record)
}

func (ctl *RoomController) GetConsumptions(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctl.minibar.ConsumptionsFor(id))
}

func (ctl *RoomController) GetMinibarTotal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"roomId": id, "total": ctl.minibar.TotalCost(id)})
}
