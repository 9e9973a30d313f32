package domain

// CustomerStatus represents whether a guest is currently in the hotel.
type CustomerStatus string

const (
	CustomerPresent  CustomerStatus = "present"
	CustomerAbsent   CustomerStatus = "absent"
	CustomerInactive CustomerStatus = "inactive"
)

// Valid reports whether s is one of the known customer statuses.
func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerPresent, CustomerAbsent, CustomerInactive:
		return true
	}
	return false
}

// Customer is a hotel guest. CustomerID is the external natural key (for
// example a national id or phone-based identifier), not the storage id.
type Customer struct {
	ID          string         `json:"-"`
	CustomerID  string         `json:"id"`
	Firstname   string         `json:"firstname"`
	Lastname    string         `json:"lastname"`
	Phone       string         `json:"phone"`
	Nationality string         `json:"nationality"`
	Status      CustomerStatus `json:"status"`
	Room        *int           `json:"room,omitempty"`
}
