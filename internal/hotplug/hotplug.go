// Package hotplug watches for a USB BLE controller being attached or
// detached so the driver can reopen its serial radio link without a
// restart, using github.com/jochenvg/go-udev's netlink device monitor.
package hotplug

import (
	"context"
	"fmt"

	"github.com/jochenvg/go-udev"
)

// Event is a simplified USB attach/detach notification.
type Event struct {
	Action  string // "add" or "remove"
	DevPath string
}

// Watch filters the udev netlink stream to the "usb" subsystem and
// sends a simplified Event for every add/remove action until ctx is
// done. The returned channel is closed when watching stops.
func Watch(ctx context.Context) (<-chan Event, error) {
	u := udev.Udev{}
	mon := u.NewMonitorFromNetlink("udev")

	if err := mon.FilterAddMatchSubsystem("usb"); err != nil {
		return nil, fmt.Errorf("hotplug: filter subsystem: %w", err)
	}

	deviceCh, errCh, err := mon.DeviceChan(ctx)
	if err != nil {
		return nil, fmt.Errorf("hotplug: start monitor: %w", err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-errCh:
				return
			case dev, ok := <-deviceCh:
				if !ok {
					return
				}
				if a := dev.Action(); a != "add" && a != "remove" {
					continue
				}
				select {
				case out <- Event{Action: dev.Action(), DevPath: dev.Devpath()}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
