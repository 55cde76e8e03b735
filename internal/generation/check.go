package generation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check reports records that drift from their declared shape: missing
// required fields, out-of-range months, unknown difficulty levels. Records
// are never modified or dropped; the result is for diagnostics only.
func Check[T any](records []T) []string {
	var warnings []string
	for i, rec := range records {
		err := validate.Struct(rec)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// Not a struct; nothing to check.
			return nil
		}
		for _, fe := range verrs {
			warnings = append(warnings, fmt.Sprintf("record %d: %s failed %q (got %v)", i, fe.Field(), fe.Tag(), fe.Value()))
		}
	}
	return warnings
}
