package timeutil

import (
	"sync"
	"time"
)

// Clock — абстракция источника времени для детерминированной подписи.
type Clock interface {
	// Now возвращает текущее время (ожидаем UTC).
	Now() time.Time
}

// UTCClock — системные часы в UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// FrozenClock — фиксированное время с возможностью ручного сдвига.
// Удобно для unit-тестов: подпись с замороженной датой воспроизводима.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time // ожидаем UTC, но не принуждаем
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{t: t}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Default — глобальные часы по умолчанию (UTC).
var Default Clock = UTCClock{}

// Now — алиас для Default.Now() (UTC).
func Now() time.Time { return Default.Now() }

// DateStamp форматирует момент времени в 8-значную дату YYYYMMDD (UTC).
// Значение участвует в выводе ключа подписи, поэтому зона фиксирована.
func DateStamp(t time.Time) string {
	return t.UTC().Format("20060102")
}
