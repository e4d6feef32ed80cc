// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/avl"
	"github.com/annetecm/Recommender-System-AVL-Tree-Graph/fault"
)

func newStringTree() *avl.Tree[string, string] {
	return avl.New[string, string](strings.Compare)
}

func cmpInt(a int, b int) int {
	return a - b
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that duplicates stay no-ops and never disturb the tree
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert all, then delete a prefix and the remainder, checking the
// invariants after every structural change
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newStringTree()
		for _, key := range addList {
			tree.Insert(key, "data:"+key)
			if !tree.Check() {
				t.Fatalf("add: %q: inconsistent tree", key)
			}
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q was not present", key)
			}
			if !tree.Check() {
				t.Fatalf("delete: %q: inconsistent tree", key)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q was not present", key)
			}
			if !tree.Check() {
				t.Fatalf("delete: %q: inconsistent tree", key)
			}
		}

		if !tree.IsEmpty() {
			t.Fatalf("remainder: %d remaining nodes", tree.Count())
		}
		if nil != tree.Root() {
			t.Fatal("remainder: root is not nil")
		}
	}
}

// inorder traversal must be the sorted unique keys
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newStringTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	entries := tree.Inorder()
	if len(entries) != len(expected) {
		t.Fatalf("inorder count: actual: %d  expected: %d", len(entries), len(expected))
	}
	for i, e := range entries {
		if e.Key != expected[i] {
			t.Fatalf("inorder[%d]: actual: %q  expected: %q", i, e.Key, expected[i])
		}
		if e.Value != "data:"+expected[i] {
			t.Fatalf("inorder[%d]: value: %q  expected: %q", i, e.Value, "data:"+expected[i])
		}
	}

	if tree.Count() != len(expected) {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	first, err := tree.First()
	if err != nil {
		t.Fatalf("first: error: %s", err)
	}
	if first.Key() != expected[0] {
		t.Fatalf("first: actual: %q  expected: %q", first.Key(), expected[0])
	}

	last, err := tree.Last()
	if err != nil {
		t.Fatalf("last: error: %s", err)
	}
	if last.Key() != expected[len(expected)-1] {
		t.Fatalf("last: actual: %q  expected: %q", last.Key(), expected[len(expected)-1])
	}
}

// fixed scenario: five keys, known inorder result and extremes
func TestInorderScenario(t *testing.T) {
	keys := []string{"m", "b", "z", "a", "c"}
	values := []int{1, 2, 3, 4, 5}

	tree := avl.New[string, int](strings.Compare)
	for i, key := range keys {
		tree.Insert(key, values[i])
	}

	expected := []avl.Entry[string, int]{
		{Key: "a", Value: 4},
		{Key: "b", Value: 2},
		{Key: "c", Value: 5},
		{Key: "m", Value: 1},
		{Key: "z", Value: 3},
	}

	entries := tree.Inorder()
	if len(entries) != len(expected) {
		t.Fatalf("inorder count: actual: %d  expected: %d", len(entries), len(expected))
	}
	for i, e := range entries {
		if e != expected[i] {
			t.Fatalf("inorder[%d]: actual: %v  expected: %v", i, e, expected[i])
		}
	}

	first, err := tree.First()
	if err != nil {
		t.Fatalf("first: error: %s", err)
	}
	if "a" != first.Key() {
		t.Fatalf("first: actual: %q  expected: %q", first.Key(), "a")
	}

	last, err := tree.Last()
	if err != nil {
		t.Fatalf("last: error: %s", err)
	}
	if "z" != last.Key() {
		t.Fatalf("last: actual: %q  expected: %q", last.Key(), "z")
	}
}

// deleting a node with two children replaces it by its in-order
// predecessor
func TestDeleteTwoChildren(t *testing.T) {
	keys := []string{"m", "b", "z", "a", "c"}
	values := []int{1, 2, 3, 4, 5}

	tree := avl.New[string, int](strings.Compare)
	for i, key := range keys {
		tree.Insert(key, values[i])
	}

	// root is "m" with two children; its predecessor is "c"
	if "m" != tree.Root().Key() {
		t.Fatalf("root: actual: %q  expected: %q", tree.Root().Key(), "m")
	}
	if !tree.Delete("m") {
		t.Fatal("delete: key was not present")
	}
	if !tree.Check() {
		t.Fatal("delete: inconsistent tree")
	}

	if "c" != tree.Root().Key() {
		t.Fatalf("replacement: actual: %q  expected: %q", tree.Root().Key(), "c")
	}
	if 5 != tree.Root().Value() {
		t.Fatalf("replacement value: actual: %d  expected: %d", tree.Root().Value(), 5)
	}
	if nil != tree.Search("m") {
		t.Fatal("deleted key is still present")
	}
	if 4 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), 4)
	}
}

// worst case insert order for an unbalanced BST must still produce a
// balanced tree
func TestSequentialInsert(t *testing.T) {
	tree := avl.New[int, int](cmpInt)
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i, i)
	}

	if !tree.Check() {
		t.Fatal("inconsistent tree")
	}
	if 3 != tree.Height() {
		t.Fatalf("height: actual: %d  expected: %d", tree.Height(), 3)
	}

	// the canonical shape is completely filled: 4(2(1,3),6(5,7))
	preorder := []int{4, 2, 1, 3, 6, 5, 7}
	for i, e := range tree.Preorder() {
		if e.Key != preorder[i] {
			t.Fatalf("preorder[%d]: actual: %d  expected: %d", i, e.Key, preorder[i])
		}
	}
	postorder := []int{1, 3, 2, 5, 7, 6, 4}
	for i, e := range tree.Postorder() {
		if e.Key != postorder[i] {
			t.Fatalf("postorder[%d]: actual: %d  expected: %d", i, e.Key, postorder[i])
		}
	}
}

// inserting an existing key must not touch the stored value
func TestFirstWriteWins(t *testing.T) {
	tree := newStringTree()

	if !tree.Insert("k", "v1") {
		t.Fatal("insert: key was reported as present")
	}
	if tree.Insert("k", "v2") {
		t.Fatal("insert: duplicate key was reported as added")
	}

	node := tree.Search("k")
	if nil == node {
		t.Fatal("search: key not found")
	}
	if "v1" != node.Value() {
		t.Fatalf("value: actual: %q  expected: %q", node.Value(), "v1")
	}
	if 1 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), 1)
	}

	// an explicit overwrite is still possible through the node
	node.SetValue("v2")
	if "v2" != tree.Search("k").Value() {
		t.Fatal("set value did not stick")
	}
}

// absent keys are no-ops, only min/max on an empty tree is an error
func TestAbsentAndEmpty(t *testing.T) {
	tree := newStringTree()

	if _, err := tree.First(); !errors.Is(err, fault.ErrEmptyTree) {
		t.Fatalf("first: wrong error: %v", err)
	}
	if _, err := tree.Last(); !errors.Is(err, fault.ErrEmptyTree) {
		t.Fatalf("last: wrong error: %v", err)
	}
	if nil != tree.Closest("anything") {
		t.Fatal("closest: non-nil on empty tree")
	}
	if tree.Delete("anything") {
		t.Fatal("delete: reported removal on empty tree")
	}

	tree.Insert("present", "data")
	if nil != tree.Search("nonexistent") {
		t.Fatal("search: found a nonexistent key")
	}
	if tree.Delete("nonexistent") {
		t.Fatal("delete: reported removal of a nonexistent key")
	}
	if 1 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), 1)
	}

	tree.Clear()
	if !tree.IsEmpty() {
		t.Fatal("clear: tree is not empty")
	}
}

func makeKey() string {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newStringTree()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key)
	}

	if !tree.Check() {
		tree.Print(io.Discard, true)
		t.Fatal("inconsistent tree")
	}

	// logarithmic height bound for the node count actually reached
	n := tree.Count()
	limit := int(1.44 * math.Log2(float64(n+1)))
	if h := tree.Height(); h > limit {
		t.Fatalf("height: %d exceeds limit: %d for %d nodes", h, limit, n)
	}

	for _, key := range d {
		tree.Delete(key)
		if !tree.Check() {
			t.Fatalf("delete: %q: inconsistent tree", key)
		}
	}

	doTraverse(t, d)
}

// a full random permutation in, a different permutation out, leaves
// an empty tree
func TestRoundTrip(t *testing.T) {
	const n = 1000

	keys := make([]string, n)
	for i := 0; i < n; i += 1 {
		keys[i] = fmt.Sprintf("%05d", i)
	}
	shuffle(keys)

	tree := newStringTree()
	for _, key := range keys {
		if !tree.Insert(key, "data:"+key) {
			t.Fatalf("insert: duplicate key: %q", key)
		}
	}
	if n != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), n)
	}

	shuffle(keys)
	for _, key := range keys {
		if !tree.Delete(key) {
			t.Fatalf("delete: missing key: %q", key)
		}
	}

	if 0 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), 0)
	}
	if nil != tree.Root() {
		t.Fatal("root is not nil")
	}
}

// Fisher-Yates with crypto random indexes
func shuffle(list []string) {
	b := make([]byte, 4)
	for i := len(list) - 1; i > 0; i -= 1 {
		_, err := rand.Read(b)
		if nil != err {
			panic("rand failed")
		}
		j := int(binary.BigEndian.Uint32(b)) % (i + 1)
		list[i], list[j] = list[j], list[i]
	}
}
