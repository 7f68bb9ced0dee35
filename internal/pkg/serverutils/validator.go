package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest checks struct tags on a request DTO. The returned
// validator.ValidationErrors is mapped to a 400 by the error middleware.
func ValidateRequest(s interface{}) error {
	return validate.Struct(s)
}
