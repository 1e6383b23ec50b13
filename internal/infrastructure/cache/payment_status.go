package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mirola777/songboard/internal/domain"
)

const forgotten domain.PaymentStatus = ""

// PaymentStatusCache remembers requests already seen paid. Only the paid
// state is ever cached because payment is one-way; the store stays the
// source of truth.
type PaymentStatusCache struct {
	entries *lru.Cache[uint, domain.PaymentStatus]
}

func NewPaymentStatusCache(size int) (*PaymentStatusCache, error) {
	entries, err := lru.New[uint, domain.PaymentStatus](size)
	if err != nil {
		return nil, err
	}
	return &PaymentStatusCache{entries: entries}, nil
}

func (c *PaymentStatusCache) Get(requestID uint) (domain.PaymentStatus, bool) {
	status, ok := c.entries.Get(requestID)
	if !ok || status == forgotten {
		return "", false
	}
	return status, true
}

// MarkPaid never replaces an existing entry, so a reader that saw the row
// paid just before a delete cannot bring the deleted id back.
func (c *PaymentStatusCache) MarkPaid(requestID uint) {
	c.entries.ContainsOrAdd(requestID, domain.PaymentStatusPaid)
}

// Forget leaves a tombstone until the entry ages out of the LRU.
func (c *PaymentStatusCache) Forget(requestID uint) {
	c.entries.Add(requestID, forgotten)
}

func (c *PaymentStatusCache) Len() int {
	return c.entries.Len()
}
