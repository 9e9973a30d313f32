package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grandstay/hotel-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /api/customers/new.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createCustomerRequest  true   "Customer"
// @Success      201              {object}  createdResponse
// @Failure      400              {object}  errorResponse
// @Router       /api/customers/new [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.CreateCustomer(c.Request().Context(), ports.CreateCustomerInput{
		CustomerID:     req.ID,
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		Phone:          req.Phone,
		Nationality:    req.Nationality,
		Status:         req.Status,
		Room:           req.Room,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// List handles GET /api/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  customerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerList(customers))
}

// Get handles GET /api/customers/:id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer id"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	customer, err := h.service.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update handles PUT /api/customers/:id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "New customer state"
// @Success      200   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.UpdateCustomer(c.Request().Context(), id, ports.UpdateCustomerInput{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Phone:       req.Phone,
		Nationality: req.Nationality,
		Status:      req.Status,
		Room:        req.Room,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /api/customers/:id.
//
// @Summary      Delete a customer
// @Tags         customers
// @Param        id  path  string  true  "Customer id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteCustomer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// customerID returns the decoded :id path parameter. Echo routes on the raw
// path when the URL carries escapes it cannot represent in Path (such as %2F),
// and the parameter is then still escaped.
func customerID(c echo.Context) (string, error) {
	id := c.Param("id")
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(id)
		if err != nil {
			return "", echo.NewHTTPError(http.StatusBadRequest, "malformed customer id")
		}
		id = unescaped
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "customer id is required")
	}
	return id, nil
}
