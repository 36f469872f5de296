package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeCanceled        Code = "CANCELED"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"

	// CodeConstruction marks a builder asked for a result before every
	// required component was supplied.
	CodeConstruction Code = "CONSTRUCTION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
