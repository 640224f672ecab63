package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/core/ports"
)

// AddressHandler handles the caller's postal address.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

type createAddressRequest struct {
	Address1   string `json:"address1" validate:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postalcode" validate:"required"`
	AptNum     *int   `json:"apt_num"`
}

// Create stores an address and links it to the caller's account.
//
// @Summary      Create own address
// @Tags         address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAddressRequest  true  "Address details"
// @Success      201   {object}  domain.Address
// @Failure      400   {object}  map[string]string
// @Router       /address [post]
func (h *AddressHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Create(c.Request().Context(), identity.UserID, ports.AddressInput{
		Address1:   req.Address1,
		Address2:   req.Address2,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		AptNum:     req.AptNum,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, address)
}

// Get returns the caller's linked address.
//
// @Summary      Get own address
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Address
// @Failure      404  {object}  map[string]string
// @Router       /address [get]
func (h *AddressHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	address, err := h.service.Get(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, address)
}
