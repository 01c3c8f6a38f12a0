package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsreader-core/core/interfaces"
)

var _ interfaces.Cache = (*MemoryCache)(nil)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "pref:city", []byte("yozgat"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "pref:city")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "yozgat" {
		t.Errorf("Get = %s, want yozgat", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	_, err := cache.Get(context.Background(), "pref:league")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss after expiry", err)
	}
}

func TestMemoryCache_ValueIsCopied(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	value := []byte("izmir")
	cache.Set(ctx, "pref:city", value, 0)
	value[0] = 'X'

	got, _ := cache.Get(ctx, "pref:city")
	if string(got) != "izmir" {
		t.Errorf("stored value mutated: %s", got)
	}

	got[0] = 'Y'
	again, _ := cache.Get(ctx, "pref:city")
	if string(again) != "izmir" {
		t.Errorf("returned value aliases store: %s", again)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "pref:district", []byte("cankaya"), 0)
	if err := cache.Delete(ctx, "pref:district"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := cache.Delete(ctx, "pref:district"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "pref:district"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "k", []byte("v"), 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Set err = %v, want context.Canceled", err)
	}
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get err = %v, want context.Canceled", err)
	}
}

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()
	cache.Set(ctx, "pref:city", []byte("istanbul"), 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, "pref:city")
	}
}
