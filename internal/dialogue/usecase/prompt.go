package usecase

import (
	"fmt"
	"strings"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/model"
)

const intentInstruction = `Bạn là AI đặt tour. Phân tích câu nói để trích xuất thông tin.

Lịch sử chat:
%s
Câu người dùng: "%s"

Nhiệm vụ:
1. Xác định Intent (Mục đích).
2. Tách rõ "Điểm xuất phát" (departure_point) và "Điểm đến" (destination_point).
   - Ví dụ: "Tôi muốn đi Đà Nẵng từ Hà Nội" -> departure: "Hà Nội", destination: "Đà Nẵng".
   - Ví dụ: "Đi chơi Sapa" -> departure: null, destination: "Sapa".
3. Xác định số người, số ngày.

Format JSON bắt buộc:
{
  "intent": "GREETING" | "SEARCH_TOUR" | "BOOK_TOUR" | "UNKNOWN",
  "departure_point": string (Nơi đi) hoặc null,
  "destination_point": string (Nơi đến) hoặc null,
  "people": number hoặc null,
  "days": number hoặc null,
  "language": "vi" | "en"
}
`

const chatInstruction = `Bạn là trợ lý du lịch chuyên nghiệp.
Hãy trả lời câu hỏi một cách ngắn gọn, thân thiện bằng ngôn ngữ: %s.
**Yêu cầu định dạng:** Sử dụng Markdown (in đậm, gạch đầu dòng, heading, code block) để câu trả lời dễ đọc hơn.
`

// buildIntentPrompt renders the analysis prompt from the trailing history
// window plus the current message.
func buildIntentPrompt(session model.Session, message string) string {
	return fmt.Sprintf(intentInstruction, buildHistoryBlock(session.History), message)
}

// buildChatPrompt renders the open-ended chat prompt in the session
// language.
func buildChatPrompt(message, lang string) string {
	return fmt.Sprintf(chatInstruction, lang) + "\nUser: " + message
}

// buildHistoryBlock formats the last MaxPromptHistory entries, one per line.
func buildHistoryBlock(history []model.Message) string {
	if len(history) > dialogue.MaxPromptHistory {
		history = history[len(history)-dialogue.MaxPromptHistory:]
	}

	var b strings.Builder
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == model.RoleUser {
			role = "User"
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
	}
	return b.String()
}
