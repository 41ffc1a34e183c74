package request_models

type AddTourRequest struct {
	ContentID string  `json:"content_id" binding:"required,max=50"`
	Title     string  `json:"title" binding:"required,max=255"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Address   string  `json:"address" binding:"max=255"`
	Image     string  `json:"image"`
	Category  string  `json:"category" binding:"required"`
	Price     int64   `json:"price"`
	Region    string  `json:"region" binding:"max=100"`
}
