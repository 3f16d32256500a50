package http

import (
	"net/http"
	"strings"

	"peerlend/internal/usecase/lender"

	"github.com/labstack/echo/v4"
)

type LenderHandler struct{ uc *lender.Usecase }

func NewLenderHandler(uc *lender.Usecase) *LenderHandler { return &LenderHandler{uc: uc} }

func (h *LenderHandler) Register(c echo.Context) error {
	dto, err := h.uc.Register(c.Request().Context(), callerAddress(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type setRequirementsReq struct {
	Refs []string `json:"refs" validate:"required,min=1,dive,hexref"`
}

func (h *LenderHandler) SetRequiredProofs(c echo.Context) error {
	var req setRequirementsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.SetRequiredProofs(c.Request().Context(), callerAddress(c), req.Refs); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"refs": req.Refs})
}

type addRequirementReq struct {
	Ref string `json:"ref" validate:"required,hexref"`
}

func (h *LenderHandler) AddRequiredProof(c echo.Context) error {
	var req addRequirementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.AddRequiredProof(c.Request().Context(), callerAddress(c), req.Ref); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"ref": req.Ref})
}

func (h *LenderHandler) RemoveRequiredProof(c echo.Context) error {
	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing ref path param"})
	}
	if err := h.uc.RemoveRequiredProof(c.Request().Context(), callerAddress(c), ref); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LenderHandler) GetRequiredProofs(c echo.Context) error {
	address := strings.ToLower(strings.TrimSpace(c.Param("address")))
	if !reHex40.MatchString(address) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender address"})
	}
	dto, err := h.uc.GetRequiredProofs(c.Request().Context(), address)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LenderHandler) GetFundedLoans(c echo.Context) error {
	address := strings.ToLower(strings.TrimSpace(c.Param("address")))
	if !reHex40.MatchString(address) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender address"})
	}
	out, err := h.uc.GetFundedLoans(c.Request().Context(), address)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
