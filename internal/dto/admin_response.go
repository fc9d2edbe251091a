package dto

type LoginResponse struct {
	Token   string `json:"token"`
	AdminID int64  `json:"admin_id"`
}
