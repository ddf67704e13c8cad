// Package discovery announces and browses for BLE AoD locator instances
// on the local network via mDNS/DNS-SD, using the pure-Go
// github.com/brutella/dnssd package.
package discovery

import (
	"context"
	"fmt"

	"github.com/brutella/dnssd"
)

// ServiceType is the DNS-SD service type locator instances advertise
// themselves under.
const ServiceType = "_aod-locate._tcp"

// Advertiser announces this locator instance's position-export service
// so clients on the local network can find it without a configured
// address.
type Advertiser struct {
	responder dnssd.Responder
}

// Advertise registers name (empty for the host-derived default) at port
// and starts responding to mDNS queries in the background. Responding
// stops when ctx is done.
func Advertise(ctx context.Context, name string, port int) (*Advertiser, error) {
	cfg := dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: ServiceType,
		Port: port,
	}

	svc, err := dnssd.NewService(cfg)
	if err != nil {
		return nil, fmt.Errorf("discovery: create service: %w", err)
	}

	responder, err := dnssd.NewResponder()
	if err != nil {
		return nil, fmt.Errorf("discovery: create responder: %w", err)
	}

	if _, err := responder.Add(svc); err != nil {
		return nil, fmt.Errorf("discovery: add service: %w", err)
	}

	go func() {
		_ = responder.Respond(ctx)
	}()

	return &Advertiser{responder: responder}, nil
}

// Browse watches the local network for other locator instances and
// invokes found each time one appears or is updated. It blocks until
// ctx is done.
func Browse(ctx context.Context, found func(dnssd.BrowseEntry)) error {
	addFn := func(e dnssd.BrowseEntry) { found(e) }
	rmvFn := func(dnssd.BrowseEntry) {}

	if err := dnssd.LookupType(ctx, ServiceType, addFn, rmvFn); err != nil {
		return fmt.Errorf("discovery: browse %s: %w", ServiceType, err)
	}
	return nil
}
