package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-premium-backend/models"
	"hotel-premium-backend/services"
	"hotel-premium-backend/utils"
)

type ClientController struct {
	clients *services.ClientService
}

func NewClientController(clients *services.ClientService) *ClientController {
	return &ClientController{clients: clients}
}

type clientRequest struct {
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber" binding:"required"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email"`
	Preferences    string `json:"preferences"`
}

func (r clientRequest) toModel() models.Client {
	return models.Client{
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Phone:          r.Phone,
		Email:          r.Email,
		Preferences:    r.Preferences,
	}
}

func (ctl *ClientController) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	client, err := ctl.clients.Add(req.toModel())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client)
}

func (ctl *ClientController) GetClients(c *gin.Context) {
	if doc := c.Query("document"); doc != "" {
		client, err := ctl.clients.GetByDocument(doc)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, client)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctl.clients.GetAll())
}

func (ctl *ClientController) GetClientByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	client, err := ctl.clients.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

func (ctl *ClientController) UpdateClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	client := req.toModel()
	client.ID = id
	if err := ctl.clients.Update(client); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

func (ctl *ClientController) DeleteClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ctl.clients.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
