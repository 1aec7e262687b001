package handler

import (
	"fmt"
	"net/http"

	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type EnquiryServiceInterface interface {
	Submit(name, email, message string) (model.Enquiry, error)
}

type EnquiryHandler struct {
	service EnquiryServiceInterface
}

func NewEnquiryHandler(service EnquiryServiceInterface) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

// SubmitEnquiryHandler handles POST /api/enquiry
func (h *EnquiryHandler) SubmitEnquiryHandler(c *gin.Context) {
	var req helpers.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitEnquiryHandler", err)
		return
	}

	record, err := h.service.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitEnquiryHandler: failed to store enquiry", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"enquiry_id": record.ID}, "enquiry submitted successfully")
	helpers.LogSuccess("SubmitEnquiryHandler", "enquiry submitted successfully", map[string]any{
		"enquiry_id": record.ID,
		"name":       record.Name,
	})
}
