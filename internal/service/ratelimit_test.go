package service_test

import (
	"testing"

	"github.com/msomdec/social-media-api/internal/service"
)

func TestLoginLimiter_AllowsUpToBurst(t *testing.T) {
	l := service.NewLoginLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("203.0.113.7") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("203.0.113.7") {
		t.Fatal("4th attempt should be denied")
	}
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	l := service.NewLoginLimiter(1, 1)

	if !l.Allow("ip-a") {
		t.Fatal("ip-a first attempt should be allowed")
	}
	if l.Allow("ip-a") {
		t.Fatal("ip-a second attempt should be denied")
	}
	if !l.Allow("ip-b") {
		t.Fatal("ip-b first attempt should be allowed")
	}
}

func TestLoginLimiter_ZeroRateNeverRefills(t *testing.T) {
	l := service.NewLoginLimiter(0, 2)

	if !l.Allow("k") || !l.Allow("k") {
		t.Fatal("first two attempts should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("third attempt should be denied")
	}
}
