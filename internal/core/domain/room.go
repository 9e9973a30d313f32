package domain

// RoomStatus represents the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOccupied  RoomStatus = "occupied"
	RoomReserved  RoomStatus = "reserved"
)

// Valid reports whether s is one of the known room statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomReserved:
		return true
	}
	return false
}

// Room is keyed by its number, which is unique across the hotel.
type Room struct {
	ID     string     `json:"-"`
	Number int        `json:"number"`
	Type   string     `json:"type"`
	Status RoomStatus `json:"status"`
}
