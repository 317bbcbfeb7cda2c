package mapper

import (
	"time"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentPage(page domain.Page[domain.Comment]) dto.Page[dto.CommentItem] {
	return ToPage(domain.MapPage(page, ToCommentItem))
}
