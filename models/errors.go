package models

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidRecord  = goerr.New("invalid monthly record")
	ErrEmptySequence  = goerr.New("record sequence is empty")
	ErrDuplicateMonth = goerr.New("duplicate month in record sequence")
)
