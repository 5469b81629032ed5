package api

import (
	"context"
	"net/url"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaBookings = "bookings"

func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.doGet(ctx, areaBookings, "/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListHostBookings returns the booking requests on the caller's rooms.
func (c *Client) ListHostBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.doGet(ctx, areaBookings, "/bookings/host", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ApproveBooking(ctx context.Context, bookingID string) error {
	if err := c.doPut(ctx, areaBookings, "/bookings/"+url.PathEscape(bookingID)+"/approve", nil, nil); err != nil {
		return err
	}
	c.invalidate(ctx, "/bookings", "/bookings/host")
	return nil
}

func (c *Client) RejectBooking(ctx context.Context, bookingID string) error {
	if err := c.doPut(ctx, areaBookings, "/bookings/"+url.PathEscape(bookingID)+"/reject", nil, nil); err != nil {
		return err
	}
	c.invalidate(ctx, "/bookings", "/bookings/host")
	return nil
}
