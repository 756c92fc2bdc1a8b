package scholar

import "errors"

var (
	ErrScholarNotFound = errors.New("scholar not found")
)
