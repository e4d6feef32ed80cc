// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrEmptyTree           = NotFoundError("tree is empty")
	ErrInvalidFieldCount   = RecordError("record has wrong number of fields")
	ErrInvalidNumericField = RecordError("numeric field is invalid")
	ErrNotFoundCatalogue   = NotFoundError("catalogue file is not found")
	ErrNotFoundTitle       = NotFoundError("title is not in the catalogue")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, unwrapping as necessary
func IsErrInvalid(e error) bool {
	var i InvalidError
	return errors.As(e, &i)
}

func IsErrNotFound(e error) bool {
	var n NotFoundError
	return errors.As(e, &n)
}

func IsErrRecord(e error) bool {
	var r RecordError
	return errors.As(e, &r)
}
