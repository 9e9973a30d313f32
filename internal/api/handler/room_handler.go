package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grandstay/hotel-api/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// Create handles POST /api/rooms/new.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createRoomRequest  true   "Room"
// @Success      201              {object}  createdResponse
// @Failure      400              {object}  errorResponse
// @Router       /api/rooms/new [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.CreateRoom(c.Request().Context(), ports.CreateRoomInput{
		Number:         req.Number,
		Type:           req.Type,
		Status:         req.Status,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// List handles GET /api/rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  roomResponse
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomList(rooms))
}

// Get handles GET /api/rooms/:number.
//
// @Summary      Get a room by number
// @Tags         rooms
// @Produce      json
// @Param        number  path      int  true  "Room number"
// @Success      200     {object}  roomResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/rooms/{number} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}
	room, err := h.service.GetRoom(c.Request().Context(), number)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Update handles PUT /api/rooms/:number.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        number  path      int                true  "Room number"
// @Param        body    body      updateRoomRequest  true  "New room state"
// @Success      200     {object}  roomResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/rooms/{number} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.UpdateRoom(c.Request().Context(), number, ports.UpdateRoomInput{
		Type:   req.Type,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Delete handles DELETE /api/rooms/:number.
//
// @Summary      Delete a room
// @Tags         rooms
// @Param        number  path  int  true  "Room number"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/rooms/{number} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	number, err := roomNumber(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteRoom(c.Request().Context(), number); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func roomNumber(c echo.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "room number must be a positive integer")
	}
	return number, nil
}
