// Package localstore implementa el puerto SessionStore sobre bbolt: un único
// bucket clave-valor que hace de localStorage del cliente.
package localstore

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/jhoicas/billed-client/internal/domain/gateway"
)

const bucketName = "session"

var _ gateway.SessionStore = (*Store)(nil)

// Store almacén local clave-valor.
type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo bbolt y asegura el bucket.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén local: %w", err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// GetItem devuelve "" sin error cuando la clave no existe, como localStorage.
func (s *Store) GetItem(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			value = string(v)
		}
		return nil
	})
	return value, err
}

// SetItem escribe (o sobreescribe) el valor de la clave.
func (s *Store) SetItem(key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
}

// RemoveItem elimina la clave; eliminar una clave ausente no es error.
func (s *Store) RemoveItem(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
}

// Clear vacía el almacén completo.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}
