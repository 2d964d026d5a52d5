package estimation

import "fmt"

// Field names of a server record as they appear on the wire.
const (
	FieldType         = "type"
	FieldManufacturer = "manufacturer"
	FieldModel        = "model"
	FieldQuantity     = "quantity"
)

// recordFields is the order in which required fields are checked, which fixes
// the field named in the error when several are missing.
var recordFields = []string{FieldType, FieldManufacturer, FieldModel, FieldQuantity}

// InvalidInputError reports the first record of a batch that failed
// validation, together with a human-readable reason.
type InvalidInputError struct {
	// Index is the zero-based position of the record in the submitted batch.
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("server record %d: %s", e.Index, e.Reason)
}

// ValidateRecord checks one candidate record of a batch. It is a gate, not a
// transform: on success it produces no value.
//
// A field is treated as missing when it is absent or falsy (null, empty
// string, zero, false). Distinguishing "absent" from "present but empty"
// would change observable behavior, so the permissive check is kept as is.
func ValidateRecord(index int, raw any) error {
	record, ok := raw.(map[string]any)
	if !ok || record == nil {
		return &InvalidInputError{Index: index, Reason: "expected a server record object"}
	}

	for _, field := range recordFields {
		if isMissing(record[field]) {
			return &InvalidInputError{Index: index, Reason: fmt.Sprintf("missing field %q", field)}
		}
	}

	serverType, _ := record[FieldType].(string)
	if !ServerType(serverType).IsValid() {
		return &InvalidInputError{
			Index:  index,
			Reason: fmt.Sprintf("type must be one of %q, %q or %q", ServerTypeRack, ServerTypeBlade, ServerTypeCustom),
		}
	}

	quantity, err := toFloat(record[FieldQuantity])
	if err != nil {
		return &InvalidInputError{Index: index, Reason: "quantity must be a number"}
	}
	if quantity <= 0 {
		return &InvalidInputError{Index: index, Reason: "quantity must be greater than zero"}
	}

	return nil
}

// isMissing reports whether a record field value counts as absent.
func isMissing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0 // JSON numbers decode as float64
	case int:
		return val == 0
	case int64:
		return val == 0
	case bool:
		return !val
	default:
		return false
	}
}

// toFloat converts a decoded JSON value to float64.
func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, fmt.Errorf("not a number (type: %T)", v)
	}
}

// asString echoes a record field back as a string without failing on
// non-string values that passed the permissive presence check.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
