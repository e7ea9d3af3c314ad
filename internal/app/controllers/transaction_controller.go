package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusshare/campusshare/internal/app/models/dto"
	"github.com/campusshare/campusshare/internal/app/services"
	"github.com/campusshare/campusshare/internal/middleware"
)

// TransactionController handles the exchange ledger
type TransactionController struct {
	ledgerService *services.LedgerService
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(ledgerService *services.LedgerService) *TransactionController {
	return &TransactionController{ledgerService: ledgerService}
}

// Process records an exchange and credits the provider
// @Summary Process a transaction
// @Description Records the exchange of a resource, credits the provider's points and consumes the resource
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.ProcessTransactionRequest true "Transaction information"
// @Success 200 {object} dto.APIResponse{data=dto.ProcessTransactionResponse} "Transaction recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 409 {object} dto.ErrorResponse "Resource already transacted"
// @Router /transactions [post]
func (c *TransactionController) Process(ctx *gin.Context) {
	var req dto.ProcessTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid transaction data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	earned, err := c.ledgerService.Execute(ctx, req.ResourceID, req.ProviderID, req.ReceiverID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ProcessTransactionResponse{Points: earned}))
}

// ListByStudent retrieves a student's transaction history
// @Summary List student transactions
// @Description Retrieves every transaction the student took part in, newest first
// @Tags transactions
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Transaction} "Transactions retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Router /students/{id}/transactions [get]
func (c *TransactionController) ListByStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	transactions, err := c.ledgerService.History(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(transactions))
}
