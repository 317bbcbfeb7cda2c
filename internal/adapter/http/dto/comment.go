package dto

type CommentItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	UserID    uint64 `json:"user_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
