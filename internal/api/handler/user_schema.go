package handler

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user manager admin"`
	Status   string `json:"status"   validate:"omitempty,oneof=active inactive pending"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Orders   int    `json:"orders"   validate:"omitempty,min=0"`
}

// updateUserRequest uses pointers so absent fields are left unchanged.
// A caller-supplied id is ignored: the path parameter is authoritative and
// identifiers are never updatable.
type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Role    *string `json:"role"    validate:"omitempty,oneof=user manager admin"`
	Status  *string `json:"status"  validate:"omitempty,oneof=active inactive pending"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Orders  *int    `json:"orders"  validate:"omitempty,min=0"`
}
