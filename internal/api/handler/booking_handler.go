package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Add creates a new booking.
//
// @Summary      Add a booking
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        body  body      addBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /booking/add [post]
func (h *BookingHandler) Add(c echo.Context) error {
	var req addBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	booking, err := h.service.Add(c.Request().Context(), ports.AddBookingInput{
		UserID:         req.UserID,
		Date:           req.Date,
		Time:           req.Time,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bookingEnvelope{
		Message: "Booking added successfully.",
		Booking: toBookingResponse(booking),
	})
}

// GetAllByUser lists all bookings owned by a user. An empty result is a 404
// at this boundary.
//
// @Summary      List bookings for a user
// @Tags         booking
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   bookingResponse
// @Failure      404     {object}  messageResponse
// @Failure      500     {object}  messageResponse
// @Router       /booking/getAllById/{userId} [get]
func (h *BookingHandler) GetAllByUser(c echo.Context) error {
	bookings, err := h.service.ByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No bookings found for user ID")
	}

	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// GetAll lists every booking, optionally filtered to an exact date.
//
// @Summary      List all bookings
// @Tags         booking
// @Produce      json
// @Param        date  query     string  false  "Exact date filter (2006-01-02)"
// @Success      200   {array}   bookingResponse
// @Failure      500   {object}  messageResponse
// @Router       /booking/getAll [get]
func (h *BookingHandler) GetAll(c echo.Context) error {
	bookings, err := h.service.All(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Cancel deletes a booking by id. Deleting an id that does not exist still
// reports success.
//
// @Summary      Cancel a booking
// @Tags         booking
// @Produce      json
// @Param        bookingId  path      string  true  "Booking id"
// @Success      200        {object}  messageResponse
// @Failure      400        {object}  messageResponse
// @Failure      500        {object}  messageResponse
// @Router       /booking/delete/{bookingId} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is required")
	}

	if err := h.service.Cancel(c.Request().Context(), bookingID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Booking canceled successfully"})
}

// Get fetches a single booking by id.
//
// @Summary      Get a booking by id
// @Tags         booking
// @Produce      json
// @Param        bookingId  path      string  true  "Booking id"
// @Success      200        {object}  bookingEnvelope
// @Failure      404        {object}  messageResponse
// @Failure      500        {object}  messageResponse
// @Router       /booking/{bookingId} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.service.ByID(c.Request().Context(), c.Param("bookingId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingEnvelope{
		Message: "Booking fetched successfully",
		Booking: toBookingResponse(booking),
	})
}

// Update edits the date, time and party size of a booking. The owner
// reference is immutable.
//
// @Summary      Edit a booking
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        bookingId  path      string                true  "Booking id"
// @Param        body       body      updateBookingRequest  true  "Updated fields"
// @Success      200        {object}  bookingEnvelope
// @Failure      404        {object}  messageResponse
// @Failure      500        {object}  messageResponse
// @Router       /booking/edit/{bookingId} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	booking, err := h.service.Update(c.Request().Context(), c.Param("bookingId"), ports.UpdateBookingInput{
		Date:           req.Date,
		Time:           req.Time,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingEnvelope{
		Message: "Booking updated successfully",
		Booking: toBookingResponse(booking),
	})
}
