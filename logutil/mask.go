package logutil

import (
	"regexp"
	"strings"
)

var sensitiveRe = regexp.MustCompile(`(?i)(password|pass|secret|token|key)`)

// MaskKey — безопасный префикс ключа для логов. Полные ключи доступа
// (и тем более секреты) в логи не попадают.
func MaskKey(key string) string {
	const keep = 4
	if len(key) <= keep {
		return "****"
	}
	return key[:keep] + "****"
}

// SanitizeFields прячет значения чувствительных полей перед логированием.
// В development/debug окружениях поля остаются как есть.
func SanitizeFields(fields map[string]string, env string) map[string]string {
	if fields == nil {
		return nil
	}

	e := strings.ToLower(env)
	if e == "development" || e == "debug" {
		return fields
	}

	sanitized := make(map[string]string, len(fields))
	for field, msg := range fields {
		if sensitiveRe.MatchString(strings.ToLower(field)) {
			sanitized[field] = "[REDACTED]"
		} else {
			sanitized[field] = msg
		}
	}
	return sanitized
}
