package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"len":       "invalid_length",
	"numeric":   "only_numbers_allowed",
	"max":       "too_long",
	"min":       "too_short",
	"oneof":     "invalid_choice",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
