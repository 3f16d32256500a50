package http

import (
	"net/http"

	"peerlend/internal/usecase/offer"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct{ uc *offer.Usecase }

func NewOfferHandler(uc *offer.Usecase) *OfferHandler { return &OfferHandler{uc: uc} }

type reviewReq struct {
	Accept          bool  `json:"accept"`
	InterestOffered int64 `json:"interest_offered" validate:"gte=0"`
}

func (h *OfferHandler) Review(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Review(c.Request().Context(), offer.ReviewInput{
		LoanID:          loanID,
		Caller:          callerAddress(c),
		Accept:          req.Accept,
		InterestOffered: req.InterestOffered,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *OfferHandler) GetOffers(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	out, err := h.uc.GetOffers(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type acceptReq struct {
	OfferIndex int `json:"offer_index" validate:"gte=0"`
}

func (h *OfferHandler) AcceptOffer(c echo.Context) error {
	loanID, err := parseLoanID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req acceptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Accept(c.Request().Context(), offer.AcceptInput{
		LoanID:     loanID,
		Caller:     callerAddress(c),
		OfferIndex: req.OfferIndex,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
