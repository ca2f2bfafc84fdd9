package transport

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	Stock       uint    `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Brand       *string  `json:"brand"`
	Stock       *uint    `json:"stock"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}
