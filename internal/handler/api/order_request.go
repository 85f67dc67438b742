package api

import (
	"context"
	"errors"
	"net/http"

	"gig-negotiation/internal/domain/negotiation"
	reqdto "gig-negotiation/internal/handler/dto/request"
	resdto "gig-negotiation/internal/handler/dto/response"
	"gig-negotiation/internal/handler/httperr"
	"gig-negotiation/internal/handler/middleware"
	"gig-negotiation/internal/pkg/errs"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// errIdentityMissing covers requests that cleared auth middleware without a
// user id in the context.
var errIdentityMissing = errs.New("user id missing from context")

type OrderRequestHandler struct {
	commands commands.OrderRequestCommands
	sweeper  commands.SweeperCommands
	queries  queries.OrderRequestQueries
}

func NewOrderRequestHandler(cmd commands.OrderRequestCommands, swp commands.SweeperCommands, qry queries.OrderRequestQueries) *OrderRequestHandler {
	return &OrderRequestHandler{
		commands: cmd,
		sweeper:  swp,
		queries:  qry,
	}
}

// @Summary Create order request
// @Description Open a negotiation by sending an initial offer
// @Tags order-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequestRequest true "Initial offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /order-requests [post]
func (h *OrderRequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	var req reqdto.CreateOrderRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.CreateOrderRequestParams{
		ClientID:     req.ClientID,
		SellerID:     req.SellerID,
		Revisions:    req.Revisions,
		DeliveryDays: req.DeliveryDays,
		PackageType:  req.PackageType,
		SubTotal:     req.SubTotal,
		Total:        req.Total,
		Expires:      req.Expires,
	}

	id, err := h.commands.Create(c.Request.Context(), userID, params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get order request
// @Description Get one order request; only its two parties may see it
// @Tags order-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order request ID"
// @Success 200 {object} resdto.OrderRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order-requests/{id} [get]
func (h *OrderRequestHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order request ID format", nil)
		return
	}

	// Settle an overdue request before reading so the caller never sees a
	// stale active offer. Best effort; the read reflects whatever committed.
	_, _ = h.sweeper.ExpireIfDue(c.Request.Context(), id)

	view, err := h.queries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order request not found", nil)
		case errors.Is(err, queries.ErrRequestAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not a party to this order request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRequestView(view))
}

// @Summary List order requests
// @Description List order requests where the current user is a party
// @Tags order-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /order-requests [get]
func (h *OrderRequestHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	items, err := h.queries.ListByParty(c.Request.Context(), userID, 0)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRequestList(items))
}

// @Summary Accept offer
// @Description Accept the offer currently on the table
// @Tags order-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order request ID"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /order-requests/{id}/accept [post]
func (h *OrderRequestHandler) Accept(c *gin.Context) {
	h.submitSimpleAction(c, h.commands.Accept)
}

// @Summary Decline offer
// @Description Decline the offer currently on the table
// @Tags order-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order request ID"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /order-requests/{id}/decline [post]
func (h *OrderRequestHandler) Decline(c *gin.Context) {
	h.submitSimpleAction(c, h.commands.Decline)
}

// @Summary Counter offer
// @Description Replace the negotiated terms with a counter-offer
// @Tags order-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order request ID"
// @Param request body reqdto.CounterOfferRequest true "Counter-offer terms"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /order-requests/{id}/counter [post]
func (h *OrderRequestHandler) Counter(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order request ID format", nil)
		return
	}

	var req reqdto.CounterOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	status, err := h.commands.Counter(c.Request.Context(), id, userID, commands.CounterOrderRequestParams{
		Revisions:    req.Revisions,
		DeliveryDays: req.DeliveryDays,
		PackageType:  req.PackageType,
		SubTotal:     req.SubTotal,
		Total:        req.Total,
		Expires:      req.Expires,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ActionResponse{ID: id, Status: status.String()})
}

// @Summary Fulfill order request
// @Description Convert an accepted request into a completed order; escrow only
// @Tags order-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order request ID"
// @Param request body reqdto.FulfillOrderRequestRequest true "Settled order"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /order-requests/{id}/fulfill [post]
func (h *OrderRequestHandler) Fulfill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order request ID format", nil)
		return
	}

	var req reqdto.FulfillOrderRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	status, err := h.commands.Fulfill(c.Request.Context(), id, req.OrderID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ActionResponse{ID: id, Status: status.String()})
}

func (h *OrderRequestHandler) submitSimpleAction(
	c *gin.Context,
	action func(ctx context.Context, requestID, actorID uuid.UUID) (negotiation.Status, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order request ID format", nil)
		return
	}

	status, err := action(c.Request.Context(), id, userID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ActionResponse{ID: id, Status: status.String()})
}

func (h *OrderRequestHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order request not found", nil)
	case errors.Is(err, negotiation.ErrNotAParty):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not a party to this order request", nil)
	case errors.Is(err, negotiation.ErrOutOfTurn):
		httperr.AbortWithError(c, http.StatusConflict, err, "Waiting for the other party to respond", nil)
	case errors.Is(err, negotiation.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not allowed in the current state", nil)
	case errors.Is(err, commands.ErrRequestNoLongerActive):
		httperr.AbortWithError(c, http.StatusGone, err, "Order request has expired", nil)
	case errors.Is(err, commands.ErrConcurrencyExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order request is being updated, retry", nil)
	case errors.Is(err, commands.ErrRequestAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order request already exists", nil)
	case errors.Is(err, negotiation.ErrSameParty),
		errors.Is(err, negotiation.ErrCreatorNotAParty),
		errors.Is(err, negotiation.ErrExpiryNotFuture),
		errors.Is(err, negotiation.ErrOrderIDRequired),
		errors.Is(err, negotiation.ErrNegativeAmount),
		errors.Is(err, negotiation.ErrTotalBelowSub),
		errors.Is(err, negotiation.ErrInvalidDelivery),
		errors.Is(err, negotiation.ErrEmptyPackageType),
		errors.Is(err, negotiation.ErrEmptyRevisions):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
