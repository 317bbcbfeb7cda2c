package validation

import (
	"errors"

	"github.com/Artem310/TaskManagerProject/internal/adapter/http/dto"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

var ErrInvalidPagination = errors.New("invalid pagination")

// BuildPageRequest applies the default page (0) and size, and rejects a
// negative page or a size outside [1, MaxPageSize].
func BuildPageRequest(query dto.PageQuery) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: 0, Size: domain.DefaultPageSize}
	if query.Page != nil {
		if *query.Page < 0 {
			return domain.PageRequest{}, ErrInvalidPagination
		}
		req.Page = *query.Page
	}
	if query.Size != nil {
		if *query.Size < 1 || *query.Size > domain.MaxPageSize {
			return domain.PageRequest{}, ErrInvalidPagination
		}
		req.Size = *query.Size
	}
	return req, nil
}
