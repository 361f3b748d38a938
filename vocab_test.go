package isr

import "testing"

func TestVocabularyStore_InsertAndIterAll(t *testing.T) {
	v := NewVocabularyStore()
	v.Insert([]byte("hello"), 0)
	v.Insert([]byte("world"), 0)
	v.Insert([]byte("hello"), 1)

	entries := v.IterAll()
	if len(entries) != 2 {
		t.Fatalf("got %d distinct words, want 2", len(entries))
	}

	words := map[string]bool{}
	for _, e := range entries {
		words[string(e.Word)] = true
	}
	if !words["hello"] || !words["world"] {
		t.Fatalf("unexpected word set: %v", words)
	}
}

func TestVocabularyStore_PostingsDeduplicated(t *testing.T) {
	v := NewVocabularyStore()
	e := v.Insert([]byte("hello"), 0)
	v.Insert([]byte("hello"), 0) // same doc again, should not duplicate
	v.Insert([]byte("hello"), 1)

	if got := e.Postings.GetCardinality(); got != 2 {
		t.Fatalf("got %d postings, want 2", got)
	}
	if !e.hasDoc(0) || !e.hasDoc(1) {
		t.Fatalf("expected postings to contain docs 0 and 1")
	}
}

func TestVocabularyStore_PostingsAscendingOrder(t *testing.T) {
	v := NewVocabularyStore()
	e := v.Insert([]byte("fox"), 3)
	v.Insert([]byte("fox"), 0)
	v.Insert([]byte("fox"), 1)

	var got []int
	it := e.Postings.Iterator()
	for it.HasNext() {
		got = append(got, int(it.Next()))
	}
	want := []int{0, 1, 3}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestVocabularyStore_HashCollisionBucketing(t *testing.T) {
	v := NewVocabularyStore()

	words := []string{"quick", "brown", "fox", "jumps", "over", "lazy", "dog", "the"}
	for i, w := range words {
		v.Insert([]byte(w), i)
	}

	if v.Len() != len(words) {
		t.Fatalf("got %d entries, want %d", v.Len(), len(words))
	}

	for i, w := range words {
		found := false
		for _, e := range v.IterAll() {
			if string(e.Word) == w {
				found = true
				if !e.hasDoc(i) {
					t.Errorf("word %q missing doc %d", w, i)
				}
			}
		}
		if !found {
			t.Errorf("word %q not found in vocabulary", w)
		}
	}
}

func TestVocabularyStore_SortAllOrdersLexicographically(t *testing.T) {
	v := NewVocabularyStore()
	words := []string{"zebra", "apple", "mango", "banana", "ant", "an"}
	for i, w := range words {
		v.Insert([]byte(w), i)
	}

	v.SortAll()
	entries := v.IterAll()

	for i := 1; i < len(entries); i++ {
		if wordCompare(entries[i-1].Word, entries[i].Word) > 0 {
			t.Fatalf("chain not sorted at index %d: %q > %q", i, entries[i-1].Word, entries[i].Word)
		}
	}
}

func TestWordCompare_ShorterWinsTie(t *testing.T) {
	if wordCompare([]byte("an"), []byte("ant")) >= 0 {
		t.Errorf("expected \"an\" < \"ant\"")
	}
	if wordCompare([]byte("ant"), []byte("an")) <= 0 {
		t.Errorf("expected \"ant\" > \"an\"")
	}
	if wordCompare([]byte("cat"), []byte("cat")) != 0 {
		t.Errorf("expected \"cat\" == \"cat\"")
	}
}

func TestSDBMHash_Deterministic(t *testing.T) {
	a := sdbmHash([]byte("hello"))
	b := sdbmHash([]byte("hello"))
	if a != b {
		t.Fatalf("hash not deterministic: %d != %d", a, b)
	}
}
