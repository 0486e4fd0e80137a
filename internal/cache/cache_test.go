package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	c := NewMemory()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("tool:args", `{"decision":"yes"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := c.Get("tool:args")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if val != `{"decision":"yes"}` {
		t.Errorf("unexpected value: %q", val)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	c := NewMemory()
	c.Set("key", "first")
	c.Set("key", "second")

	val, _ := c.Get("key")
	if val != "second" {
		t.Errorf("expected latest value, got %q", val)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%5)
			c.Set(key, fmt.Sprintf("value-%d", n))
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if _, ok := c.Get("key-0"); !ok {
		t.Error("expected key-0 to be present")
	}
}
