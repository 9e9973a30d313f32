package handler

import "github.com/grandstay/hotel-api/internal/core/domain"

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		Number: r.Number,
		Type:   r.Type,
		Status: string(r.Status),
	}
}

func toRoomList(rooms []*domain.Room) []roomResponse {
	out := make([]roomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = toRoomResponse(r)
	}
	return out
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:          c.CustomerID,
		Firstname:   c.Firstname,
		Lastname:    c.Lastname,
		Phone:       c.Phone,
		Nationality: c.Nationality,
		Status:      string(c.Status),
		Room:        c.Room,
	}
}

func toCustomerList(customers []*domain.Customer) []customerResponse {
	out := make([]customerResponse, len(customers))
	for i, c := range customers {
		out[i] = toCustomerResponse(c)
	}
	return out
}
