package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akramov/telepos/internal/adapters/http/handlers"
	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/dto"
	"github.com/akramov/telepos/internal/core/service"
	"github.com/akramov/telepos/internal/core/serviceerrors"
)

// EntryController exposes the numeric keypad. Each keystroke is a
// request against the single active entry session.
type EntryController struct {
	entryService *service.EntryService
	cartService  *service.CartService
}

type EntrySessionResponse struct {
	Active  bool   `json:"active"`
	LineID  string `json:"line_id,omitempty"`
	Field   string `json:"field,omitempty"`
	Pending string `json:"pending,omitempty"`
}

func NewEntrySessionResponse(session service.EntrySession, active bool) EntrySessionResponse {
	if !active {
		return EntrySessionResponse{}
	}
	return EntrySessionResponse{
		Active:  true,
		LineID:  string(session.LineID),
		Field:   string(session.Field),
		Pending: session.Pending,
	}
}

func NewEntryController(entryService *service.EntryService, cartService *service.CartService) *EntryController {
	return &EntryController{entryService: entryService, cartService: cartService}
}

func (ec *EntryController) GetSession(c *gin.Context) {
	session, active := ec.entryService.Session()
	c.JSON(http.StatusOK, NewEntrySessionResponse(session, active))
}

func (ec *EntryController) Begin(c *gin.Context) {
	var request dto.BeginEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	field, err := service.ParseEntryField(request.Field)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	session, err := ec.entryService.Begin(c.Request.Context(), domain.ID(request.LineID), field)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEntrySessionResponse(session, true))
}

func (ec *EntryController) Digit(c *gin.Context) {
	var request dto.DigitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	session, err := ec.entryService.AppendDigit(request.Digit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEntrySessionResponse(session, true))
}

func (ec *EntryController) DecimalPoint(c *gin.Context) {
	session, err := ec.entryService.AppendDecimalPoint()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEntrySessionResponse(session, true))
}

func (ec *EntryController) Backspace(c *gin.Context) {
	session, err := ec.entryService.Backspace()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEntrySessionResponse(session, true))
}

func (ec *EntryController) ClearPending(c *gin.Context) {
	session, err := ec.entryService.ClearPending()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEntrySessionResponse(session, true))
}

func (ec *EntryController) Adjust(c *gin.Context) {
	var request dto.AdjustRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	session, err := ec.entryService.AdjustBy(request.Delta)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewEntrySessionResponse(session, true))
}

// Commit applies the pending value to the cart and closes the session.
// The updated cart comes back so the screen can refresh in one round
// trip.
func (ec *EntryController) Commit(c *gin.Context) {
	if err := ec.entryService.Commit(c.Request.Context()); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartStateResponse(ec.cartService))
}

func (ec *EntryController) LiveUpdate(c *gin.Context) {
	var request dto.InlineEditRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	field, err := service.ParseEntryField(request.Field)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	if err := ec.entryService.LiveUpdate(c.Request.Context(), domain.ID(request.LineID), field, request.Raw); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartStateResponse(ec.cartService))
}

func (ec *EntryController) Finalize(c *gin.Context) {
	var request dto.InlineEditRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	field, err := service.ParseEntryField(request.Field)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	if err := ec.entryService.Finalize(c.Request.Context(), domain.ID(request.LineID), field, request.Raw); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartStateResponse(ec.cartService))
}

func cartStateResponse(cartService *service.CartService) CartResponse {
	lines := cartService.Lines()
	response := CartResponse{
		Lines: make([]CartLineResponse, len(lines)),
		Total: cartService.Total(),
	}
	for i, line := range lines {
		response.Lines[i] = NewCartLineResponse(line)
	}
	return response
}
