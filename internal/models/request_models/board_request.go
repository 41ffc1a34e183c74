package request_models

type CreateBoardRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Content  string `json:"content" binding:"required"`
	Tag      string `json:"tag" binding:"max=50"`
	ImageURL string `json:"image_url"`
}

type UpdateBoardRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Content  string `json:"content" binding:"required"`
	Tag      string `json:"tag" binding:"max=50"`
	ImageURL string `json:"image_url"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}
