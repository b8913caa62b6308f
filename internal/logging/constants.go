package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldFormat     = "format"
	FieldSection    = "section"
	FieldPage       = "page"
	FieldLine       = "line"
	FieldCategory   = "category"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldCount      = "count"
	FieldRunID      = "run_id"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
