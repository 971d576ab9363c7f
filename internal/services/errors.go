package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactive           = errors.New("account disabled")
)

// DataSourceError reports a failed read of a backing collection.
type DataSourceError struct {
	Collection string
	Err        error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Collection, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func dataSource(collection string, err error) error {
	if err == nil {
		return nil
	}
	return &DataSourceError{Collection: collection, Err: err}
}
