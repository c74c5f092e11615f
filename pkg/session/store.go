// Package session persists widget state across runs of the host:
// named sessions, each a flat list of widget type/state pairs, stored
// in a bolt database.
package session

import (
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"src.lunekit.org/pkg/logutil"
)

var logger = logutil.GetLogger("[session] ")

// ErrNoSuchSession is returned by Session when the name is not stored.
var ErrNoSuchSession = errors.New("no such session")

const bucketSessions = "sessions"

// Store is the interface satisfied by the session storage service.
type Store interface {
	// SaveSession stores a session under a name, replacing any previous
	// session with that name.
	SaveSession(name string, s Session) error
	// Session retrieves a stored session by name.
	Session(name string) (Session, error)
	// DelSession removes a stored session. Removing an absent name is
	// not an error.
	DelSession(name string) error
	// SessionNames lists stored session names in key order.
	SessionNames() ([]string, error)
	// Close waits for pending operations and closes the database.
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens a session store backed by the named database file,
// creating it if needed.
func NewStore(dbname string) (Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, err
	}
	logger.Println("opened database", dbname)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSessions))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}

func (s *dbStore) SaveSession(name string, sess Session) error {
	data, err := json.Marshal(sess.Entries)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions))
		return b.Put([]byte(name), data)
	})
}

func (s *dbStore) Session(name string) (Session, error) {
	var sess Session
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoSuchSession
		}
		return json.Unmarshal(v, &sess.Entries)
	})
	return sess, err
}

func (s *dbStore) DelSession(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions))
		return b.Delete([]byte(name))
	})
}

func (s *dbStore) SessionNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions))
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	return names, err
}
