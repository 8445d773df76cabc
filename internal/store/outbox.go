package store

import (
	"encoding/binary"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

func init() {
	initDB["initialize outbox table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketOutbox))
		return err
	}
}

// Message is one relayed form submission.
type Message struct {
	Seq    int               `json:"-"`
	Form   string            `json:"form"`
	Params map[string]string `json:"params"`
	Sent   time.Time         `json:"sent"`
	// Error is the relay failure, empty when delivered.
	Error string `json:"error,omitempty"`
}

// AddMessage appends a message to the outbox and returns its sequence number.
func (s *Store) AddMessage(m Message) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketOutbox))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return int(seq), err
}

// Messages returns up to limit of the most recent messages, oldest first.
// A limit of 0 returns all of them.
func (s *Store) Messages(limit int) ([]Message, error) {
	var out []Message
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketOutbox)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) == limit {
				break
			}
			var m Message
			if err := json.Unmarshal(v, &m); err != nil {
				return err
			}
			m.Seq = int(unmarshalSeq(k))
			out = append(out, m)
		}
		return nil
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, err
}

// DelMessage removes a message by sequence number.
func (s *Store) DelMessage(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketOutbox))
		k := marshalSeq(uint64(seq))
		if b.Get(k) == nil {
			return ErrNotFound
		}
		return b.Delete(k)
	})
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
