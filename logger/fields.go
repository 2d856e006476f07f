package logger

// Standard field names for structured logging.
const (
	FieldRunID  = "run_id"
	FieldError  = "error"
	FieldFile   = "file"
	FieldFormat = "format"
	FieldCount  = "count"
)
