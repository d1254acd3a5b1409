package util

// Message keys for localized responses.
const (
	MSG_ERROR_INVALID_DAYS     = "error_invalid_days"
	MSG_ERROR_INVALID_BUDGET   = "error_invalid_budget"
	MSG_ERROR_INVALID_MOBILITY = "error_invalid_mobility"
	MSG_ERROR_INVALID_LANG     = "error_invalid_lang"
	MSG_ERROR_GENERAL          = "error_general"
	MSG_LUNCH                  = "lunch"
	MSG_TRAVEL                 = "travel"
)

var messages = map[string]map[string]string{
	MSG_ERROR_INVALID_DAYS: {
		"ru": "Параметр days должен быть 1, 2 или 3.",
		"en": "Parameter days must be 1, 2, or 3.",
	},
	MSG_ERROR_INVALID_BUDGET: {
		"ru": "Параметр budget_level должен быть economy, standard или comfort.",
		"en": "Parameter budget_level must be economy, standard, or comfort.",
	},
	MSG_ERROR_INVALID_MOBILITY: {
		"ru": "Параметр mobility должен быть strict или normal.",
		"en": "Parameter mobility must be strict or normal.",
	},
	MSG_ERROR_INVALID_LANG: {
		"ru": "Параметр lang должен быть ru или en.",
		"en": "Parameter lang must be ru or en.",
	},
	MSG_ERROR_GENERAL: {
		"ru": "Произошла ошибка при генерации маршрута.",
		"en": "An error occurred while generating the itinerary.",
	},
	MSG_LUNCH: {
		"ru": "Обед (кафе)",
		"en": "Lunch (cafe)",
	},
	MSG_TRAVEL: {
		"ru": "Переезд",
		"en": "Transfer",
	},
}

// Translate resolves a message key for the given language, falling back to
// Russian, then to the key itself.
func Translate(key, lang string) string {
	bucket, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := bucket[lang]; ok {
		return msg
	}
	if msg, ok := bucket["ru"]; ok {
		return msg
	}
	return key
}
