package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

// loginRequest accepts both JSON bodies and OAuth2-style form posts.
type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type protectedResponse struct {
	User    string `json:"user"`
	Message string `json:"message"`
}

// --- Entities ---

type createdResponse struct {
	ID string `json:"id"`
}

type createRoomRequest struct {
	Number int    `json:"number" validate:"required,gt=0"`
	Type   string `json:"type"   validate:"required"`
	Status string `json:"status" validate:"required,oneof=available occupied reserved"`
}

type updateRoomRequest struct {
	Type   string `json:"type"`
	Status string `json:"status" validate:"required,oneof=available occupied reserved"`
}

type roomResponse struct {
	Number int    `json:"number"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type createCustomerRequest struct {
	ID          string `json:"id"          validate:"required"`
	Firstname   string `json:"firstname"   validate:"required"`
	Lastname    string `json:"lastname"    validate:"required"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Status      string `json:"status"      validate:"omitempty,oneof=present absent inactive"`
	Room        *int   `json:"room"        validate:"omitempty,gt=0"`
}

// updateCustomerRequest is the full new state of the customer's mutable fields.
type updateCustomerRequest struct {
	Firstname   string `json:"firstname"   validate:"required"`
	Lastname    string `json:"lastname"    validate:"required"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Status      string `json:"status"      validate:"required,oneof=present absent inactive"`
	Room        *int   `json:"room"        validate:"omitempty,gt=0"`
}

type customerResponse struct {
	ID          string `json:"id"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Status      string `json:"status"`
	Room        *int   `json:"room,omitempty"`
}
