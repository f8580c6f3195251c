package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"withme/internal/models/request_models"
	"withme/internal/services"
	"withme/pkg/utils"
)

type ExpensesController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpensesController(expenseService services.ExpenseServiceInterface) *ExpensesController {
	return &ExpensesController{expenseService: expenseService}
}

func (e *ExpensesController) AddExpense(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "PaidBy, Title and AmountMinor are required")
		return
	}

	id, err := e.expenseService.AddExpense(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Expense added successfully")
}

func (e *ExpensesController) ListExpenses(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

func (e *ExpensesController) Summary(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	summary, err := e.expenseService.Summary(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Expense summary computed successfully")
}
