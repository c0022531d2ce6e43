package handlers

import (
	request "movequote/internal/adapter/http/dto/request"
	response "movequote/internal/adapter/http/dto/response"
	"movequote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MoverQuoteHandler serves the mover side of quoting: submitting or
// rejecting a request and reading quotes back.
type MoverQuoteHandler struct {
	transition usecase.IQuoteTransitionUseCase
	query      usecase.IQuoteQueryUseCase
}

func NewMoverQuoteHandler(transition usecase.IQuoteTransitionUseCase, query usecase.IQuoteQueryUseCase) *MoverQuoteHandler {
	return &MoverQuoteHandler{transition: transition, query: query}
}

// SubmitQuote godoc
// @Summary      Submit a quote for a requested move
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitQuoteRequest  true  "Quote"
// @Success      201   {object}  response.MoverQuoteViewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes [post]
func (h *MoverQuoteHandler) SubmitQuote(c *gin.Context) {
	moverID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	view, err := h.transition.SubmitQuote(c.Request.Context(), payload.QuoteRequestID, moverID, payload.Price, payload.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMoverQuoteView(view))
}

// RejectQuote godoc
// @Summary      Reject a targeted quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote_request_id  path      string                      true  "Quote request ID"
// @Param        body              body      request.RejectQuoteRequest  true  "Reason"
// @Success      200               {object}  response.MoverQuoteViewResponse
// @Failure      404               {object}  pkg.HTTPError
// @Failure      409               {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quote-requests/{quote_request_id}/reject [post]
func (h *MoverQuoteHandler) RejectQuote(c *gin.Context) {
	moverID, ok := currentUser(c)
	if !ok {
		return
	}
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	view, err := h.transition.RejectQuote(c.Request.Context(), c.Param("quote_request_id"), moverID, payload.RejectionReason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMoverQuoteView(view))
}

// GetQuoteForCustomer godoc
// @Summary      Quote detail with the mover's public profile
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteViewResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/customer [get]
func (h *MoverQuoteHandler) GetQuoteForCustomer(c *gin.Context) {
	view, err := h.query.GetQuoteForCustomer(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(view))
}

// GetQuoteForMover godoc
// @Summary      Quote detail with the customer's name
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteViewResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/mover [get]
func (h *MoverQuoteHandler) GetQuoteForMover(c *gin.Context) {
	view, err := h.query.GetQuoteForMover(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(view))
}

// ListQuotesForMover godoc
// @Summary      The authenticated mover's quotes, newest move first
// @Tags         quotes
// @Produce      json
// @Param        page       query     int  false  "Page (default 1)"
// @Param        page_size  query     int  false  "Page size (default 4)"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/mover [get]
func (h *MoverQuoteHandler) ListQuotesForMover(c *gin.Context) {
	moverID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize, err := request.ParsePaging(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.query.ListQuotesForMover(c.Request.Context(), page, pageSize, moverID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteViewPage(res))
}

// ListOpenQuoteRequests godoc
// @Summary      Quote requests still open for quotes, latest move date first
// @Tags         quote-requests
// @Produce      json
// @Param        page       query     int  false  "Page (default 1)"
// @Param        page_size  query     int  false  "Page size (default 4)"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quote-requests [get]
func (h *MoverQuoteHandler) ListOpenQuoteRequests(c *gin.Context) {
	page, pageSize, err := request.ParsePaging(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.query.ListOpenQuoteRequests(c.Request.Context(), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequestPage(res))
}
