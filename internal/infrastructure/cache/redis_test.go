package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_PingsAndSelectsDB(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c, err := OpenRedis(s.Addr(), 3)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	// idempotency records and settlement guards both ride on this client,
	// so a round trip has to work out of the box
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Set(ctx, "idemp:probe", "1", time.Minute).Err(); err != nil {
		t.Fatalf("SET: %v", err)
	}
	v, err := c.Get(ctx, "idemp:probe").Result()
	if err != nil || v != "1" {
		t.Fatalf("GET: v=%q err=%v", v, err)
	}
}

func TestOpenRedis_UnreachableHost(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected connect error, got nil")
	}
}
