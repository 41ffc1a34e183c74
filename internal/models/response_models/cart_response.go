package response_models

type TourInfo struct {
	TourID    string  `json:"tour_id"`
	ContentID string  `json:"content_id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category"`
	Price     int64   `json:"price"`
}

type CartDetailResponse struct {
	CartID     string     `json:"cart_id"`
	Region     string     `json:"region,omitempty"`
	Tours      []TourInfo `json:"tours"`
	TotalCount int        `json:"total_count"`
	TotalPrice int64      `json:"total_price"`
}
