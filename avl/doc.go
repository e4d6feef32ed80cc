// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced key-value tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ordering of keys is supplied as a three-way comparison function
// when the tree is created.  Each node caches the height of its
// subtree; after an insert or delete every node on the path back to
// the root has its height refreshed and is rotated back into balance
// when its balance factor leaves the range [-1, +1].
//
// Insertion of a key that is already present leaves the stored value
// untouched, so an insert acts as insert-or-get.  Deleting or
// searching for an absent key is a no-op, not an error; only the
// minimum/maximum queries on an empty tree report a fault.
//
// The Closest search measures nearness as the magnitude of the
// three-way comparison result (or of a separate distance function if
// one was supplied).  For comparators that only report ordering,
// e.g. plain lexicographic string comparison, every miss is at the
// same "distance" and the result degrades to the first boundary node
// visited; supply a real distance function when that matters.
package avl
