package seo

import "errors"

var (
  ErrEntityNotFound      = errors.New("entity not found")
  ErrVersionNotFound     = errors.New("version not found")
  ErrPersistenceConflict = errors.New("concurrent version append conflict")
)
