package locale

const (
	// VI is Vietnamese.
	VI = "vi"
	// EN is English.
	EN = "en"
)

// LangList contains all supported language codes.
var LangList = []string{VI, EN}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = VI

// Message keys understood by Msg.
const (
	KeyAskDestination = "ask_dest"
	KeyAskDeparture   = "ask_dep"
	KeyAskPeople      = "ask_people"
	KeyAskDays        = "ask_days"
	KeyBookRequest    = "book_req"
	KeyNoTour         = "no_tour"
	KeyFoundTour      = "found_tour"
	KeyCallToAction   = "cta"
)
