package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=4" example:"s3cret"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Code    string `json:"code" example:"4E3WK5A"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=4" example:"s3cret"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
