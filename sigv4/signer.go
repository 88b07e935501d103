// Package sigv4 computes a deterministic signature over a raw HTTP/1.1
// request frame: the frame is parsed, normalized into a canonical
// request, hashed, and signed with a key derived from the caller's
// secret key, the current date and the access key. Only computation is
// provided; transporting or verifying signatures is the caller's business.
package sigv4

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/vortex-fintech/go-reqsign/canonical"
	errs "github.com/vortex-fintech/go-reqsign/errors"
	"github.com/vortex-fintech/go-reqsign/frame"
	"github.com/vortex-fintech/go-reqsign/hmacutil"
	"github.com/vortex-fintech/go-reqsign/logger"
	"github.com/vortex-fintech/go-reqsign/logutil"
	"github.com/vortex-fintech/go-reqsign/metrics"
	"github.com/vortex-fintech/go-reqsign/timeutil"
	"github.com/vortex-fintech/go-reqsign/validator"
)

// SigningContext — ключи и дата одного вызова подписи.
// Живёт один вызов, никуда не сохраняется.
type SigningContext struct {
	AccessKey string
	SecretKey string
	DateStamp string `validate:"required,len=8,numeric"`
}

// Signer is safe for concurrent use: the pipeline is pure and the clock
// is read exactly once per invocation.
type Signer struct {
	clock timeutil.Clock
	log   logger.LoggerInterface
	stats *metrics.Signing
}

type Option func(*Signer)

// WithClock подменяет источник даты (в тестах — timeutil.FrozenClock).
func WithClock(c timeutil.Clock) Option {
	return func(s *Signer) { s.clock = c }
}

func WithLogger(l logger.LoggerInterface) Option {
	return func(s *Signer) { s.log = l }
}

func WithMetrics(m *metrics.Signing) Option {
	return func(s *Signer) { s.stats = m }
}

func New(opts ...Option) *Signer {
	s := &Signer{
		clock: timeutil.Default,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign derives the signature of a raw request frame. Empty keys are
// accepted: the algorithm is defined over arbitrary byte strings.
func (s *Signer) Sign(accessKey, secretKey string, rawFrame []byte) (string, error) {
	start := time.Now()

	// дата фиксируется один раз на вызов
	sc := SigningContext{
		AccessKey: accessKey,
		SecretKey: secretKey,
		DateStamp: timeutil.DateStamp(s.clock.Now()),
	}
	if fields := validator.Validate(sc); fields != nil {
		err := errs.ValidationError(fields).WithReason("invalid_date_stamp")
		s.stats.ObserveFailure(failureReason(err))
		return "", err
	}

	req, err := frame.Parse(rawFrame)
	if err != nil {
		s.stats.ObserveFailure(failureReason(err))
		return "", err
	}

	stringToSign := StringToSign(canonical.Request(req))
	signingKey := DeriveSigningKey(sc.SecretKey, sc.DateStamp, sc.AccessKey)
	signature := hmacutil.Compute(stringToSign, []byte(signingKey))

	s.log.Debugw("signature computed",
		"access_key", logutil.MaskKey(sc.AccessKey),
		"method", req.Method,
		"path", req.Path,
		"date_stamp", sc.DateStamp,
		"string_to_sign", stringToSign,
	)
	s.stats.ObserveSuccess(time.Since(start).Seconds())
	return signature, nil
}

// StringToSign — hex(SHA256(canonicalRequest)).
func StringToSign(canonicalRequest string) string {
	sum := sha256.Sum256([]byte(canonicalRequest))
	return hex.EncodeToString(sum[:])
}

var defaultSigner = New()

// Sign — подпись на часах по умолчанию (UTC).
func Sign(accessKey, secretKey string, rawFrame []byte) (string, error) {
	return defaultSigner.Sign(accessKey, secretKey, rawFrame)
}
