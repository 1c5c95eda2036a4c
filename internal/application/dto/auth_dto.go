package dto

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token y datos básicos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserInfoDTO  `json:"user"`
}

// UserInfoDTO respuesta de GET /api/user-info: usuario y su empresa
// ("Sin Empresa" cuando no tiene una asociada).
type UserInfoDTO struct {
	Username    string `json:"username"`
	Empresa     string `json:"empresa"`
	IsSuperuser bool   `json:"is_superuser"`
}
