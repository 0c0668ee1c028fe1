package i8080

import (
	"errors"

	"github.com/is386/i8080step/translate"
)

var f = translate.From

var (
	// ErrAddressOutOfRange is returned when an offset falls outside a byte buffer.
	ErrAddressOutOfRange = errors.New(f("address out of range"))
)

// AddressError reports the offending offset and the length of the buffer it was used on.
type AddressError struct {
	Offset int
	Len    int
}

func (err *AddressError) Error() string {
	return f("offset $%04X outside buffer of $%05X bytes", err.Offset, err.Len)
}

func (err *AddressError) Unwrap() error {
	return ErrAddressOutOfRange
}
