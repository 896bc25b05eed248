package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"estore/internal/errors"
	"estore/internal/logger"
	"estore/internal/metrics"
	"estore/internal/model"
	"estore/internal/service"
)

// IssueHandler handles issuance endpoints.
type IssueHandler struct {
	issuanceService service.IssuanceService
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(issuanceService service.IssuanceService) *IssueHandler {
	return &IssueHandler{issuanceService: issuanceService}
}

// IssueRequest represents an issuance request. Quantity is untyped because
// clients have always sent it as either a JSON number or a string.
type IssueRequest struct {
	Department string      `json:"department" validate:"required"`
	ItemID     string      `json:"itemId" validate:"required"`
	ItemName   string      `json:"itemName"`
	ItemModel  string      `json:"itemModel"`
	Quantity   interface{} `json:"quantity"`
}

// IssueResponse represents a successful issuance.
type IssueResponse struct {
	Message         string `json:"message"`
	UpdatedQuantity int    `json:"updatedQuantity"`
}

// CreateIssue godoc
// @Summary Issue stock to a department
// @Tags issues
// @Accept json
// @Produce json
// @Param request body IssueRequest true "Issue data"
// @Success 201 {object} IssueResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/issues [post]
func (h *IssueHandler) CreateIssue(c echo.Context) error {
	var req IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	newQty, err := h.issuanceService.Issue(
		c.Request().Context(),
		req.Department,
		req.ItemID,
		req.ItemName,
		req.ItemModel,
		fmt.Sprint(req.Quantity),
	)
	if err != nil {
		metrics.CountIssue(issueOutcome(err))
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			logger.L().Error("issue failed",
				zap.String("item_id", req.ItemID),
				zap.String("department", req.Department),
				zap.Error(err))
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	metrics.CountIssue("issued")
	logger.L().Info("stock issued",
		zap.String("item_id", req.ItemID),
		zap.String("department", req.Department),
		zap.Int("updated_quantity", newQty))

	return c.JSON(http.StatusCreated, IssueResponse{
		Message:         "issue recorded",
		UpdatedQuantity: newQty,
	})
}

// ListIssues godoc
// @Summary List all issue records
// @Tags issues
// @Produce json
// @Success 200 {array} model.Issue
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/issues [get]
func (h *IssueHandler) ListIssues(c echo.Context) error {
	issues, err := h.issuanceService.ListIssues(c.Request().Context())
	if err != nil {
		logger.L().Error("list issues failed", zap.Error(err))
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if issues == nil {
		issues = []model.Issue{}
	}
	return c.JSON(http.StatusOK, issues)
}

func issueOutcome(err error) string {
	switch err {
	case errors.ErrInvalidQuantity:
		return "invalid"
	case errors.ErrItemNotFound:
		return "not_found"
	case errors.ErrInsufficientQuantity:
		return "insufficient"
	default:
		return "error"
	}
}
