package dto

type OrderRequest struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Wilaya    string `json:"wilaya"`
	Commune   string `json:"commune"`
	Address   string `json:"address"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}
