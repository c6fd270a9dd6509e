package root

import (
	"strings"
	"testing"

	"github.com/samber/do/v2"

	"github.com/appengine-ltd/podo-rush/internal/config"
)

type closeTracker struct{ closed bool }

func (c *closeTracker) Shutdown() error {
	c.closed = true
	return nil
}

func TestServicesFromShutsDownOnFailure(t *testing.T) {
	injector := do.New()
	tracker := &closeTracker{}
	do.ProvideValue(injector, tracker)
	do.ProvideValue(injector, &config.Config{})
	// No logger is registered, so resolution fails after the config.

	svc, cleanup, err := servicesFrom(injector)
	if err == nil || !strings.Contains(err.Error(), "start logger") {
		t.Fatalf("expected logger failure, got %v", err)
	}
	if svc != nil || cleanup != nil {
		t.Fatalf("expected nothing returned on failure")
	}
	if !tracker.closed {
		t.Fatalf("expected the injector to be shut down")
	}
}
