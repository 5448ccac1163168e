package dialogue

import "errors"

// Domain errors
var (
	// ErrUserIDRequired - Thiếu user_id
	ErrUserIDRequired = errors.New("dialogue: user_id is required")

	// ErrMessageRequired - Tin nhắn rỗng
	ErrMessageRequired = errors.New("dialogue: message is required")

	// ErrResetFailed - Xóa lịch sử thất bại
	ErrResetFailed = errors.New("dialogue: history reset failed")
)
