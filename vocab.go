// ═══════════════════════════════════════════════════════════════════════════════
// VOCABULARY STORE
// ═══════════════════════════════════════════════════════════════════════════════
// The vocabulary store is a hash-bucketed binary tree: each distinct
// stemmed word is hashed with SDBM, and the tree is keyed by the raw 4-byte
// hash value (compared byte-for-byte, not as an integer — an arbitrary but
// stable ordering). Collisions on a hash land in the same tree node's
// bucket, an unordered chain of WordEntry values threaded through
// WordEntry.bucketNext.
//
// A second, independent chain — WordEntry.globalNext — threads every word
// entry, newest first (each new entry is prepended, so the chain holds the
// reverse of creation order until SortAll reorders it). This is what makes
// the store sortable and iterable in O(n): the tree is good for lookup,
// terrible for in-order traversal (it isn't ordered by word at all, only by
// hash), so a parallel linked list carries every entry and doubles as the
// backbone for an in-place (relinking) merge sort.
//
// Both chains are a direct port of the original C program's "two next
// pointers" trick (isr-prog3.c, isr3_word_entry.next / .global_next).
// ═══════════════════════════════════════════════════════════════════════════════

package isr

import (
	"bytes"

	"github.com/RoaringBitmap/roaring"
)

// WordEntry is one distinct stemmed word in the vocabulary, along with the
// set of documents it occurs in.
type WordEntry struct {
	Word     []byte
	Postings *roaring.Bitmap

	bucketNext *WordEntry // next entry hashing to the same tree node
	globalNext *WordEntry // next entry in the global chain (newest first until SortAll)
}

// hasDoc reports whether docID is already recorded for this entry.
func (w *WordEntry) hasDoc(docID int) bool {
	return w.Postings.Contains(uint32(docID))
}

// treeNode is one node of the hash-keyed binary tree. hash is compared as an
// opaque 4-byte string, not as an integer — the ordering this induces is
// arbitrary, but it's stable, which is all the tree needs.
type treeNode struct {
	hash        [4]byte
	left, right *treeNode
	bucket      *WordEntry // head of the collision chain for this hash
}

// VocabularyStore maps stemmed words to WordEntry values and maintains the
// global chain of all entries alongside the hash tree.
type VocabularyStore struct {
	root       *treeNode
	globalHead *WordEntry
	count      int
}

// NewVocabularyStore returns an empty vocabulary store.
func NewVocabularyStore() *VocabularyStore {
	return &VocabularyStore{}
}

// Len reports the number of distinct words recorded so far.
func (v *VocabularyStore) Len() int {
	return v.count
}

// sdbmHash computes the 32-bit SDBM hash of word, matching the original
// program's hash_word(): h = 0; for each byte b, h = b + (h<<6) + (h<<16) - h.
func sdbmHash(word []byte) uint32 {
	var h uint32
	for _, b := range word {
		h = uint32(b) + (h << 6) + (h << 16) - h
	}
	return h
}

func hashBytes(h uint32) [4]byte {
	return [4]byte{byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h)}
}

// Insert locates or creates the WordEntry for word and records docID in its
// postings, deduplicated. A newly created entry stores its own copy of word,
// so callers may reuse the word buffer after Insert returns.
func (v *VocabularyStore) Insert(word []byte, docID int) *WordEntry {
	hash := hashBytes(sdbmHash(word))

	cur := &v.root
	for *cur != nil {
		cmp := bytes.Compare(hash[:], (*cur).hash[:])
		switch {
		case cmp < 0:
			cur = &(*cur).left
		case cmp > 0:
			cur = &(*cur).right
		default:
			return v.insertIntoBucket(*cur, word, docID)
		}
	}

	// Hash miss: no node exists at this position yet.
	node := &treeNode{hash: hash}
	*cur = node
	return v.insertIntoBucket(node, word, docID)
}

// insertIntoBucket scans node's collision chain for word, appending docID to
// an existing entry or creating a new one.
func (v *VocabularyStore) insertIntoBucket(node *treeNode, word []byte, docID int) *WordEntry {
	for e := node.bucket; e != nil; e = e.bucketNext {
		if bytes.Equal(e.Word, word) {
			e.Postings.Add(uint32(docID))
			return e
		}
	}

	entry := &WordEntry{
		Word:     append([]byte(nil), word...),
		Postings: roaring.New(),
	}
	entry.Postings.Add(uint32(docID))

	entry.bucketNext = node.bucket
	node.bucket = entry

	entry.globalNext = v.globalHead
	v.globalHead = entry
	v.count++

	return entry
}

// Lookup finds the WordEntry for word without inserting, returning
// ErrWordNotFound if no document's vocabulary contains it.
func (v *VocabularyStore) Lookup(word []byte) (*WordEntry, error) {
	hash := hashBytes(sdbmHash(word))

	node := v.root
	for node != nil {
		cmp := bytes.Compare(hash[:], node.hash[:])
		switch {
		case cmp < 0:
			node = node.left
		case cmp > 0:
			node = node.right
		default:
			for e := node.bucket; e != nil; e = e.bucketNext {
				if bytes.Equal(e.Word, word) {
					return e, nil
				}
			}
			return nil, ErrWordNotFound
		}
	}
	return nil, ErrWordNotFound
}

// IterAll returns every word entry in global-chain order, head to tail:
// most recently created first, or sorted by word after SortAll.
func (v *VocabularyStore) IterAll() []*WordEntry {
	out := make([]*WordEntry, 0, v.count)
	for e := v.globalHead; e != nil; e = e.globalNext {
		out = append(out, e)
	}
	return out
}

// wordCompare is the word ordering used throughout the store: lexicographic
// byte comparison over min(len1, len2) bytes, the shorter word winning ties.
func wordCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if c := bytes.Compare(a[:n], b[:n]); c != 0 {
		return c
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// SortAll reorders the global chain lexicographically by word, using a
// merge sort over the linked list: tortoise-and-hare splitting, then
// recursive merge with in-place node relinking. No WordEntry is copied; only
// globalNext pointers move.
func (v *VocabularyStore) SortAll() {
	v.globalHead = mergeSortChain(v.globalHead)
}

func mergeSortChain(head *WordEntry) *WordEntry {
	if head == nil || head.globalNext == nil {
		return head
	}

	first, second := splitChain(head)
	first = mergeSortChain(first)
	second = mergeSortChain(second)

	return mergeChains(first, second)
}

// splitChain divides a non-empty, non-singleton chain into two halves using
// the tortoise-and-hare technique: fast advances two nodes for every one the
// slow pointer advances, so when fast runs out, slow sits just before the
// midpoint.
func splitChain(head *WordEntry) (first, second *WordEntry) {
	slow, fast := head, head.globalNext

	for fast != nil {
		fast = fast.globalNext
		if fast != nil {
			slow = slow.globalNext
			fast = fast.globalNext
		}
	}

	first = head
	second = slow.globalNext
	slow.globalNext = nil
	return first, second
}

// mergeChains merges two already-sorted chains, relinking globalNext
// pointers in place (no new nodes are allocated).
func mergeChains(first, second *WordEntry) *WordEntry {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}

	if wordCompare(first.Word, second.Word) <= 0 {
		first.globalNext = mergeChains(first.globalNext, second)
		return first
	}
	second.globalNext = mergeChains(first, second.globalNext)
	return second
}
