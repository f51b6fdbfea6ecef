package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNotOwner = errors.New("not the author")
)

// asNotFound 把 gorm 的 record-not-found 归一成领域错误
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
