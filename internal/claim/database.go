package claim

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "claims"

// DB defines the interface for database operations
type DB interface {
	// SaveClaim saves a claim to the database
	SaveClaim(claim *Claim) error

	// GetClaim retrieves a claim by ID
	GetClaim(id string) (*Claim, error)

	// ListClaims returns all claims
	ListClaims() ([]*Claim, error)

	// DeleteClaim removes a claim from the database
	DeleteClaim(id string) error

	// Close closes the database connection
	Close() error
}

// BoltDB implements the DB interface using BoltDB
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB creates a new BoltDB instance
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// SaveClaim saves a claim to the database
func (b *BoltDB) SaveClaim(claim *Claim) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data, err := json.Marshal(claim)
		if err != nil {
			return fmt.Errorf("marshaling claim: %w", err)
		}
		return bucket.Put([]byte(claim.ID), data)
	})
}

// GetClaim retrieves a claim by ID
func (b *BoltDB) GetClaim(id string) (*Claim, error) {
	var claim *Claim
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("claim not found: %s", id)
		}
		claim = &Claim{}
		return json.Unmarshal(data, claim)
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// ListClaims returns all claims
func (b *BoltDB) ListClaims() ([]*Claim, error) {
	var claims []*Claim
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		return bucket.ForEach(func(k, v []byte) error {
			claim := &Claim{}
			if err := json.Unmarshal(v, claim); err != nil {
				return fmt.Errorf("unmarshaling claim %s: %w", k, err)
			}
			claims = append(claims, claim)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// DeleteClaim removes a claim from the database
func (b *BoltDB) DeleteClaim(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket.Get([]byte(id)) == nil {
			return fmt.Errorf("claim not found: %s", id)
		}
		return bucket.Delete([]byte(id))
	})
}

// Close closes the database
func (b *BoltDB) Close() error {
	return b.db.Close()
}
