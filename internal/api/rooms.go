package api

import (
	"context"
	"net/url"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaRooms = "rooms"

func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.doGet(ctx, areaRooms, "/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	var room models.Room
	if err := c.doGet(ctx, areaRooms, "/rooms/"+url.PathEscape(roomID), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	var created models.Room
	if err := c.doPost(ctx, areaRooms, "/rooms", room, &created); err != nil {
		return nil, err
	}
	c.invalidate(ctx, "/rooms")
	return &created, nil
}

func (c *Client) UpdateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	var updated models.Room
	if err := c.doPut(ctx, areaRooms, "/rooms/"+url.PathEscape(room.ID), room, &updated); err != nil {
		return nil, err
	}
	c.invalidate(ctx, "/rooms", "/rooms/"+url.PathEscape(room.ID))
	return &updated, nil
}

// UpdateRoomStatus flips the operational status only.
func (c *Client) UpdateRoomStatus(ctx context.Context, roomID, status string) error {
	body := map[string]string{"status": status}
	if err := c.doPatch(ctx, areaRooms, "/rooms/"+url.PathEscape(roomID)+"/status", body, nil); err != nil {
		return err
	}
	c.invalidate(ctx, "/rooms", "/rooms/"+url.PathEscape(roomID))
	return nil
}

func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	if err := c.doDelete(ctx, areaRooms, "/rooms/"+url.PathEscape(roomID)); err != nil {
		return err
	}
	c.invalidate(ctx, "/rooms", "/rooms/"+url.PathEscape(roomID))
	return nil
}

// SearchRoomsByKeyword uses the lightweight keyword endpoint.
func (c *Client) SearchRoomsByKeyword(ctx context.Context, keyword string) ([]models.Room, error) {
	var rooms []models.Room
	path := "/rooms/searchRoom?q=" + url.QueryEscape(keyword)
	if err := c.doGet(ctx, areaRooms, path, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// SearchRooms runs the filter form search.
func (c *Client) SearchRooms(ctx context.Context, filter *models.RoomSearch) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.doPost(ctx, areaRooms, "/rooms/search", filter, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
