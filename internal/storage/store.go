package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	favoritesBucket = []byte("favorites")
	// favoritesKey is the single fixed key the favorite list lives under,
	// as a JSON array of lowercase subreddit names.
	favoritesKey = []byte("favelister")
)

type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(favoritesBucket)
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddFavorite lowercases the name, appends it to the favorite list, re-sorts
// and persists the whole list, then returns it. Duplicates are not filtered:
// adding the same name twice stores it twice.
func (s *Store) AddFavorite(name string) ([]string, error) {
	var favorites []string
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(favoritesBucket)

		list, err := readFavorites(b)
		if err != nil {
			return err
		}

		list = append(list, strings.ToLower(name))
		sort.Strings(list)

		data, err := json.Marshal(list)
		if err != nil {
			return err
		}
		if err := b.Put(favoritesKey, data); err != nil {
			return err
		}

		favorites = list
		return nil
	})
	return favorites, err
}

// Favorites returns the persisted favorite list, initializing it to an empty
// list if it has never been written.
func (s *Store) Favorites() ([]string, error) {
	var favorites []string
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(favoritesBucket)

		if b.Get(favoritesKey) == nil {
			if err := b.Put(favoritesKey, []byte("[]")); err != nil {
				return err
			}
		}

		list, err := readFavorites(b)
		if err != nil {
			return err
		}
		favorites = list
		return nil
	})
	return favorites, err
}

func readFavorites(b *bolt.Bucket) ([]string, error) {
	data := b.Get(favoritesKey)
	if data == nil {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("unmarshaling favorites: %w", err)
	}
	return list, nil
}
