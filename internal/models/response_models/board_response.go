package response_models

type BoardListItem struct {
	BoardID      string `json:"board_id"`
	Title        string `json:"title"`
	UserNickname string `json:"user_nickname"`
	CreatedAt    int64  `json:"created_at"`
	ViewCount    int    `json:"view_count"`
	ImageURL     string `json:"image_url,omitempty"`
	Tag          string `json:"tag,omitempty"`
}

type CommentResponse struct {
	CommentID    string `json:"comment_id"`
	UserNickname string `json:"user_nickname"`
	Content      string `json:"content"`
	CreatedAt    int64  `json:"created_at"`
}

type BoardDetailResponse struct {
	BoardID        string            `json:"board_id"`
	Title          string            `json:"title"`
	Content        string            `json:"content"`
	UserNickname   string            `json:"user_nickname"`
	CreatedAt      int64             `json:"created_at"`
	ViewCount      int               `json:"view_count"`
	ImageURL       string            `json:"image_url,omitempty"`
	Tag            string            `json:"tag,omitempty"`
	Comments       []CommentResponse `json:"comments"`
	HasNextComment bool              `json:"has_next_comment"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	HasNext  bool              `json:"has_next"`
}
