package handlers

import (
	"errors"
	request "movequote/internal/adapter/http/dto/request"
	response "movequote/internal/adapter/http/dto/response"
	"movequote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// CreateQuoteRequest godoc
// @Summary      Request quotes for a move
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.MoveRequest  true  "Move"
// @Success      201   {object}  response.QuoteRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quote-requests [post]
func (h *QuoteRequestHandler) CreateQuoteRequest(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload request.MoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput(customerID)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.CreateQuoteRequest(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteRequest(req))
}

// TargetMover godoc
// @Summary      Ask a specific mover for a quote
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        quote_request_id  path      string                      true  "Quote request ID"
// @Param        body              body      request.TargetMoverRequest  true  "Mover"
// @Success      201               {object}  response.TargetedQuoteRequestResponse
// @Failure      401               {object}  pkg.HTTPError
// @Failure      404               {object}  pkg.HTTPError
// @Failure      409               {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quote-requests/{quote_request_id}/targets [post]
func (h *QuoteRequestHandler) TargetMover(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload request.TargetMoverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	target, err := h.usecase.TargetMover(c.Request.Context(), customerID, c.Param("quote_request_id"), payload.MoverID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTargetedQuoteRequest(target))
}

// GetLatestQuoteRequest godoc
// @Summary      The authenticated customer's most recent quote request
// @Tags         quote-requests
// @Produce      json
// @Success      200  {object}  response.LatestQuoteRequestResponse
// @Security     Bearer
// @Router       /quote-requests/latest [get]
func (h *QuoteRequestHandler) GetLatestQuoteRequest(c *gin.Context) {
	customerID, ok := currentUser(c)
	if !ok {
		return
	}

	req, err := h.usecase.GetLatestQuoteRequestForCustomer(c.Request.Context(), customerID)
	if err != nil && !errors.Is(err, usecase.ErrQuoteRequestNotFound) {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLatestQuoteRequest(req))
}
