// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrRecordOne   = fault.RecordError("record one")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
		record   bool
	}{
		{ErrInvalidOne, true, false, false},
		{ErrNotFoundOne, false, true, false},
		{ErrRecordOne, false, false, true},
		{fault.ErrEmptyTree, false, true, false},
		{fault.ErrInvalidFieldCount, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// test that wrapped instances still compare and classify
func TestWrapping(t *testing.T) {
	err := fmt.Errorf("line %d: %w", 7, fault.ErrInvalidFieldCount)

	if !errors.Is(err, fault.ErrInvalidFieldCount) {
		t.Errorf("wrapped error lost its instance: %v", err)
	}
	if !fault.IsErrRecord(err) {
		t.Errorf("wrapped error lost its class: %v", err)
	}
	if fault.IsErrNotFound(err) {
		t.Errorf("wrapped error gained a class: %v", err)
	}
}
