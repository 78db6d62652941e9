// Package quota tracks monthly usage of the paid vision API so a burst of
// uploads cannot run up an unbounded bill.
package quota

import (
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "ai_quota"

// Counter gates calls against a monthly limit.
type Counter interface {
	// CheckAndIncrement records one attempted call for the current month.
	// It returns whether the call is allowed and the count after recording.
	// Once the limit is reached further calls are denied until the month
	// rolls over; denied calls are not counted.
	CheckAndIncrement() (allowed bool, count int, err error)

	// Remaining returns how many calls are left this month.
	Remaining() (int, error)

	// Close closes the underlying database.
	Close() error
}

// TimeSource provides the current time, injectable for testing month rollover.
type TimeSource interface {
	Now() time.Time
}

type realTimeSource struct{}

func (realTimeSource) Now() time.Time { return time.Now() }

// BoltCounter implements Counter on a bbolt bucket keyed by month. Counts for
// past months are left in place so usage history survives restarts.
type BoltCounter struct {
	db    *bbolt.DB
	limit int
	clock TimeSource
}

// NewBoltCounter opens (or creates) the counter database at path.
// A limit of zero or less disables the gate entirely.
func NewBoltCounter(path string, limit int) (*BoltCounter, error) {
	return NewBoltCounterWithTimeSource(path, limit, realTimeSource{})
}

// NewBoltCounterWithTimeSource creates a BoltCounter with a custom time source
func NewBoltCounterWithTimeSource(path string, limit int, clock TimeSource) (*BoltCounter, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening quota db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating quota bucket: %w", err)
	}

	return &BoltCounter{db: db, limit: limit, clock: clock}, nil
}

// CheckAndIncrement atomically checks the month's count against the limit and
// records the call when allowed.
func (c *BoltCounter) CheckAndIncrement() (bool, int, error) {
	if c.limit <= 0 {
		return true, 0, nil
	}

	key := []byte(c.monthKey())
	var allowed bool
	var count int

	err := c.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		count = decodeCount(bucket.Get(key))
		if count >= c.limit {
			allowed = false
			return nil
		}
		count++
		allowed = true
		return bucket.Put(key, encodeCount(count))
	})
	if err != nil {
		return false, 0, fmt.Errorf("updating quota count: %w", err)
	}

	return allowed, count, nil
}

// Remaining returns how many calls are left this month
func (c *BoltCounter) Remaining() (int, error) {
	if c.limit <= 0 {
		return -1, nil
	}

	key := []byte(c.monthKey())
	var count int
	err := c.db.View(func(tx *bbolt.Tx) error {
		count = decodeCount(tx.Bucket([]byte(bucketName)).Get(key))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reading quota count: %w", err)
	}

	remaining := c.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Close closes the database
func (c *BoltCounter) Close() error {
	return c.db.Close()
}

func (c *BoltCounter) monthKey() string {
	return c.clock.Now().UTC().Format("2006-01")
}

func encodeCount(n int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return buf
}

func decodeCount(data []byte) int {
	if len(data) != 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(data))
}
