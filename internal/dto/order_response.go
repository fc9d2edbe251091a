package dto

type OrderLinkResponse struct {
	URL string `json:"url"`
}
