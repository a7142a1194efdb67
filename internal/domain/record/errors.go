package record

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrEmptyImport    = errors.New("import batch contains no records")
)
