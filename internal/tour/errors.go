package tour

import "errors"

var (
	// ErrCatalogUnavailable - Không lấy được danh sách tour từ nguồn
	ErrCatalogUnavailable = errors.New("tour: catalog source unavailable")

	// ErrCatalogMalformed - Nguồn trả về dữ liệu không đọc được
	ErrCatalogMalformed = errors.New("tour: catalog payload malformed")
)
