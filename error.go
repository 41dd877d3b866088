package cmdline

import (
	"fmt"
)

// Error is the family of terminal parse errors recorded by a CmdLine.
type Error interface {
	isError()
	fmt.Stringer
	fmt.GoStringer
	error
	Unwrap() error
}
type ErrorEmptyFlagName struct{}
type ErrorUnknownOption struct {
	Name string
}
type ErrorTooManyArguments struct {
	Arg string
}
type ErrorUnexpectedValue struct {
	Name  string
	Value string
}
type ErrorMissingValue struct {
	Name string
}
type ErrorCustom struct {
	A error
}

var _ Error = (*ErrorEmptyFlagName)(nil)
var _ Error = (*ErrorUnknownOption)(nil)
var _ Error = (*ErrorTooManyArguments)(nil)
var _ Error = (*ErrorUnexpectedValue)(nil)
var _ Error = (*ErrorMissingValue)(nil)
var _ Error = (*ErrorCustom)(nil)

func (ErrorEmptyFlagName) isError()    {}
func (ErrorUnknownOption) isError()    {}
func (ErrorTooManyArguments) isError() {}
func (ErrorUnexpectedValue) isError()  {}
func (ErrorMissingValue) isError()     {}
func (ErrorCustom) isError()           {}

func (e *ErrorEmptyFlagName) String() string {
	return "empty flag name is not allowed"
}
func (e *ErrorUnknownOption) String() string {
	return fmt.Sprintf("unknown option: --%v", e.Name)
}
func (e *ErrorTooManyArguments) String() string {
	return "too many arguments"
}
func (e *ErrorUnexpectedValue) String() string {
	return fmt.Sprintf("option takes no argument: --%v", e.Name)
}
func (e *ErrorMissingValue) String() string {
	return fmt.Sprintf("missing argument for option: --%v", e.Name)
}
func (e *ErrorCustom) String() string {
	return fmt.Sprint(e.A)
}

func (e *ErrorEmptyFlagName) GoString() string {
	return e.String()
}
func (e *ErrorUnknownOption) GoString() string {
	return e.String()
}
func (e *ErrorTooManyArguments) GoString() string {
	return e.String()
}
func (e *ErrorUnexpectedValue) GoString() string {
	return e.String()
}
func (e *ErrorMissingValue) GoString() string {
	return e.String()
}
func (e *ErrorCustom) GoString() string {
	return e.String()
}

func (e *ErrorEmptyFlagName) Error() string {
	return e.String()
}
func (e *ErrorUnknownOption) Error() string {
	return e.String()
}
func (e *ErrorTooManyArguments) Error() string {
	return e.String()
}
func (e *ErrorUnexpectedValue) Error() string {
	return e.String()
}
func (e *ErrorMissingValue) Error() string {
	return e.String()
}
func (e *ErrorCustom) Error() string {
	return e.String()
}

func (e *ErrorEmptyFlagName) Unwrap() error {
	return nil
}
func (e *ErrorUnknownOption) Unwrap() error {
	return nil
}
func (e *ErrorTooManyArguments) Unwrap() error {
	return nil
}
func (e *ErrorUnexpectedValue) Unwrap() error {
	return nil
}
func (e *ErrorMissingValue) Unwrap() error {
	return nil
}
func (e *ErrorCustom) Unwrap() error {
	return e.A
}
