package store

import (
	"bytes"
	"testing"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	kv := MemStore()

	k, v := []byte("hello"), []byte("world")
	if kv.Has(k) {
		t.Fatal("new store must be empty")
	}

	kv.Set(k, v)
	if !kv.Has(k) {
		t.Fatal("key must exist after set")
	}
	if got := kv.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}

	kv.Delete(k)
	if kv.Has(k) {
		t.Fatal("key must be gone after delete")
	}
	if got := kv.Get(k); got != nil {
		t.Fatalf("deleted key must read nil, got %q", got)
	}
}

func TestCacheWrapWriteCommits(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))

	cache := kv.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))

	// parent still untouched
	if !kv.Has([]byte("a")) || kv.Has([]byte("b")) {
		t.Fatal("cache writes must not leak before Write")
	}

	cache.Write()

	if kv.Has([]byte("a")) {
		t.Fatal("delete must be applied on Write")
	}
	if got := kv.Get([]byte("b")); !bytes.Equal(got, []byte("2")) {
		t.Fatalf("set must be applied on Write, got %q", got)
	}
}

func TestCacheWrapDiscardRollsBack(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))

	cache := kv.CacheWrap()
	cache.Set([]byte("a"), []byte("overwritten"))
	cache.Set([]byte("b"), []byte("2"))
	cache.Discard()

	if got := kv.Get([]byte("a")); !bytes.Equal(got, []byte("1")) {
		t.Fatalf("discard must leave parent untouched, got %q", got)
	}
	if kv.Has([]byte("b")) {
		t.Fatal("discarded write must not be visible")
	}
}

func TestCacheWrapShadowsParentReads(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))

	cache := kv.CacheWrap()
	if got := cache.Get([]byte("a")); !bytes.Equal(got, []byte("1")) {
		t.Fatalf("cache must read through to parent, got %q", got)
	}

	cache.Delete([]byte("a"))
	if cache.Has([]byte("a")) {
		t.Fatal("local delete must shadow parent value")
	}
}

func TestIteratorCombinesCacheAndParent(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))
	kv.Set([]byte("c"), []byte("3"))

	cache := kv.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("c"))
	cache.Set([]byte("a"), []byte("one"))

	var keys, values []string
	it := cache.Iterator(nil, nil)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
		values = append(values, string(it.Value()))
	}

	wantKeys := []string{"a", "b"}
	wantValues := []string{"one", "2"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("want keys %v, got %v", wantKeys, keys)
	}
	for i := range wantKeys {
		if keys[i] != wantKeys[i] || values[i] != wantValues[i] {
			t.Fatalf("position %d: want %s=%s, got %s=%s",
				i, wantKeys[i], wantValues[i], keys[i], values[i])
		}
	}
}

func TestIteratorRange(t *testing.T) {
	kv := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		kv.Set([]byte(k), []byte(k))
	}

	var keys []string
	it := kv.Iterator([]byte("b"), []byte("d"))
	defer it.Close()
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}

	if len(keys) != 2 || keys[0] != "b" || keys[1] != "c" {
		t.Fatalf("want [b c], got %v", keys)
	}
}
