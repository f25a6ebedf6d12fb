package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile          = "file_path"
	FieldSource        = "source"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldKeyword       = "keyword"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldCount         = "count"
	FieldModel         = "model"
	FieldMimeType      = "mime_type"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
