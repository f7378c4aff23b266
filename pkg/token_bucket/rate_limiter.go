package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket классический token bucket: capacity токенов, пополнение refillRate токенов в секунду.
// Дробные токены накапливаются между вызовами.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

func (t *TokenBucket) idleSince() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRefill
}

// KeyedLimiter держит отдельный bucket на каждый ключ (например, адрес клиента).
// Bucket'ы, которые не трогали дольше idleTTL, удаляются при очередном обращении.
type KeyedLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

func NewKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		buckets:    make(map[string]*TokenBucket),
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		lastSweep:  time.Now(),
		now:        time.Now,
	}
}

func (k *KeyedLimiter) AllowKey(key string) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		bucket = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = bucket
	}
	k.sweepLocked()
	k.mu.Unlock()

	return bucket.Allow()
}

// Len количество живых bucket'ов.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedLimiter) sweepLocked() {
	if k.idleTTL <= 0 {
		return
	}
	now := k.now()
	if now.Sub(k.lastSweep) < k.idleTTL {
		return
	}
	for key, bucket := range k.buckets {
		if now.Sub(bucket.idleSince()) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
