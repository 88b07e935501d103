package sigv4

import "github.com/vortex-fintech/go-reqsign/hmacutil"

// DeriveSigningKey выводит ключ подписи двумя шагами HMAC-SHA256:
//
//	DateKey    = hex(HMAC(secretKey, dateStamp))
//	SigningKey = hex(HMAC(DateKey, accessKey))
//
// Каждый следующий шаг перезаводится hex-СТРОКОЙ предыдущего
// дайджеста, не сырыми байтами. Референсные векторы завязаны на это
// точно, "оптимизация" в raw-byte chaining ломает все подписи.
func DeriveSigningKey(secretKey, dateStamp, accessKey string) string {
	dateKey := hmacutil.Compute(dateStamp, []byte(secretKey))
	return hmacutil.Compute(accessKey, []byte(dateKey))
}
