package locale

import (
	"fmt"
	"strings"
)

// messages holds the reply templates per language. Placeholders use
// {name} syntax and are substituted by Msg.
var messages = map[string]map[string]string{
	VI: {
		KeyAskDestination: "Bạn muốn đi du lịch ở đâu? Cho mình biết điểm đến nhé! 🌍",
		KeyAskDeparture:   "Bạn muốn khởi hành từ đâu?",
		KeyAskPeople:      "Tuyệt vời! Tour {dep} đi {dest}. Nhóm của bạn có bao nhiêu người?",
		KeyAskDays:        "Bạn dự định đi trong bao nhiêu ngày?",
		KeyBookRequest:    "Mình đã ghi nhận yêu cầu đặt tour của bạn. Bộ phận tư vấn sẽ liên hệ với bạn sớm nhất! 📞",
		KeyNoTour:         "Rất tiếc, mình không tìm thấy tour nào đi {dest} từ {dep} với thời gian từ {days} ngày. Bạn thử đổi điểm đến hoặc số ngày nhé!",
		KeyFoundTour:      "Mình tìm thấy {count} tour đi {dest} khởi hành từ {dep} cho {people} người, thời gian từ {days} ngày:",
		KeyCallToAction:   "Bạn muốn đặt tour nào? Nhắn cho mình tên tour để đặt nhé! ✨",
	},
	EN: {
		KeyAskDestination: "Where would you like to travel? Tell me your destination! 🌍",
		KeyAskDeparture:   "Where will you be departing from?",
		KeyAskPeople:      "Great! A tour from {dep} to {dest}. How many people are in your group?",
		KeyAskDays:        "How many days do you plan to travel?",
		KeyBookRequest:    "Your booking request has been received. Our consultant will contact you shortly! 📞",
		KeyNoTour:         "Sorry, I could not find any tour to {dest} from {dep} lasting at least {days} days. Try another destination or duration!",
		KeyFoundTour:      "I found {count} tours to {dest} departing from {dep} for {people} people, lasting at least {days} days:",
		KeyCallToAction:   "Which tour would you like to book? Send me the tour name! ✨",
	},
}

// Msg renders the template for (lang, key) with the named params
// substituted. Unknown lang falls back to DefaultLang, unknown key to the
// key itself so a missing template is visible rather than silent.
func Msg(lang, key string, params map[string]any) string {
	catalog, ok := messages[lang]
	if !ok {
		catalog = messages[DefaultLang]
	}
	tpl, ok := catalog[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return tpl
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// TourCard carries the fields rendered on one result line.
type TourCard struct {
	Name      string
	Departure string
	Days      string
	Price     string
}

// FormatTourCard renders one 1-indexed result line for the reply list.
func FormatTourCard(lang string, index int, card TourCard) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d. %s", index, card.Name))
	if card.Days != "" {
		if lang == EN {
			b.WriteString(fmt.Sprintf(" (%s days", card.Days))
		} else {
			b.WriteString(fmt.Sprintf(" (%s ngày", card.Days))
		}
		if card.Departure != "" {
			if lang == EN {
				b.WriteString(", from " + card.Departure)
			} else {
				b.WriteString(", khởi hành từ " + card.Departure)
			}
		}
		b.WriteString(")")
	}
	if card.Price != "" {
		if lang == EN {
			b.WriteString(" - Price: " + card.Price)
		} else {
			b.WriteString(" - Giá: " + card.Price)
		}
	}
	return b.String()
}
