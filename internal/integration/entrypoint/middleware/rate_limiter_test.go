// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Run("allows up to the attempt limit", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("attempt %d was blocked, want allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("attempt over the limit was allowed, want blocked")
		}
	})

	t.Run("keys are tracked independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first attempt blocked")
		}
		if rl.allow("10.0.0.1") {
			t.Error("second attempt for same key allowed, want blocked")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("attempt for a different key blocked, want allowed")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first attempt blocked")
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("second attempt allowed before window expiry")
		}

		time.Sleep(20 * time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Error("attempt after window expiry blocked, want allowed")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		_ = rl.allow("10.0.0.1")
		if rl.allow("10.0.0.1") {
			t.Fatal("limit not enforced before reset")
		}

		rl.Reset()

		if !rl.allow("10.0.0.1") {
			t.Error("attempt after reset blocked, want allowed")
		}
	})

	t.Run("cleanup drops only expired entries", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		_ = rl.allow("expired")
		time.Sleep(20 * time.Millisecond)
		_ = rl.allow("fresh")

		rl.Cleanup()

		if _, ok := rl.entries["expired"]; ok {
			t.Error("expired entry survived cleanup")
		}
		if _, ok := rl.entries["fresh"]; !ok {
			t.Error("fresh entry was removed by cleanup")
		}
	})
}
