package export

import "errors"

var (
	ErrNilRecord    = errors.New("export: record is nil")
	ErrNoRecords    = errors.New("export: no records to export")
	ErrRenderFailed = errors.New("export: render failed")
)
