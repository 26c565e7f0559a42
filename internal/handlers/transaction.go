package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"trustshield/internal/services/currency"
	"trustshield/internal/services/dashboard"
	"trustshield/internal/services/risk"
	"trustshield/internal/utils/pagination"
	"trustshield/internal/utils/response"
	"trustshield/internal/validation"
)

type TransactionHandler struct {
	session *dashboard.Session
}

func NewTransactionHandler(session *dashboard.Session) *TransactionHandler {
	return &TransactionHandler{session: session}
}

type amountInput struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

// parseAmountInput reads and validates the request body. It writes the error
// response itself and reports whether the handler should continue.
func parseAmountInput(c *fiber.Ctx) (dashboard.SubmitRequest, bool, error) {
	var input amountInput
	if err := c.BodyParser(&input); err != nil {
		return dashboard.SubmitRequest{}, false, response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Check(input.Amount != nil, "amount", "is required")
	if input.Amount != nil {
		v.Amount("amount", *input.Amount)
	}
	v.OneOf("currency", input.Currency, currency.INR, currency.USD)
	if !v.Valid() {
		return dashboard.SubmitRequest{}, false, response.ValidationError(c, v.Errors)
	}

	return dashboard.SubmitRequest{Amount: *input.Amount, Currency: input.Currency}, true, nil
}

// ListTransactions returns one page of the transaction table
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c, h.session.Config().PageSize)
	page := h.session.Transactions(c.Query("search"), p.Offset, p.Limit)
	p.Total = int64(page.Total)
	return c.JSON(pagination.Response(p, page.Items))
}

// GetTransaction returns a single transaction by ID
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	txn, err := h.session.Transaction(c.Params("id"))
	if err != nil {
		if errors.Is(err, dashboard.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.ServerError(c, "Failed to get transaction")
	}
	return response.Success(c, "Transaction retrieved successfully", txn)
}

// CreateTransaction scores and records an amount entered on the dashboard
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	req, ok, err := parseAmountInput(c)
	if !ok {
		return err
	}

	result, err := h.session.Submit(c.UserContext(), req)
	if err != nil {
		log.Printf("transaction rejected: %v", err)
		return response.DomainError(c, err)
	}

	title, description := risk.LevelMessage(result.Assessment.Level)
	return response.Created(c, title, fiber.Map{
		"transaction": result.Transaction,
		"assessment":  result.Assessment,
		"stats":       result.Stats,
		"description": description,
	})
}
