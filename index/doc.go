// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - ordered indexes over the loaded catalogue
//
// Both indexes are AVL trees keyed by strings and hold positions
// into the record slice they were built from, never copies of the
// records themselves.
package index
