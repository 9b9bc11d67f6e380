package bus

import (
	"fmt"
	"log"

	"github.com/godbus/dbus/v5"
)

const (
	// pcmInterface marks objects that expose a remote PCM endpoint.
	pcmInterface = "org.bluealsa.PCM1"
	// pcmService owns the PCM objects; property queries go to it. Signal
	// matching is deliberately sender-agnostic so a restart of the service
	// does not invalidate the subscription.
	pcmService = "org.bluealsa"

	objectManagerIface = "org.freedesktop.DBus.ObjectManager"
	interfacesAdded    = objectManagerIface + ".InterfacesAdded"
	interfacesRemoved  = objectManagerIface + ".InterfacesRemoved"
)

// Watcher subscribes to ObjectManager add/remove signals and translates them
// into Events. The translation goroutine owns no shared state; all decisions
// happen on the supervisor loop that drains Events().
type Watcher struct {
	conn   *dbus.Conn
	sigs   chan *dbus.Signal
	events chan Event

	// queryProps is swapped out in tests.
	queryProps func(path dbus.ObjectPath) (map[string]dbus.Variant, error)
}

// Subscribe installs both signal matches on conn and starts the translation
// goroutine. Failing to subscribe is fatal for the daemon: without its bus
// input it cannot function.
func Subscribe(conn *dbus.Conn) (*Watcher, error) {
	w := &Watcher{
		conn:   conn,
		sigs:   make(chan *dbus.Signal, 32),
		events: make(chan Event, 32),
	}
	w.queryProps = w.getAllProperties

	for _, member := range []string{"InterfacesAdded", "InterfacesRemoved"} {
		if err := conn.AddMatchSignal(
			dbus.WithMatchInterface(objectManagerIface),
			dbus.WithMatchMember(member),
		); err != nil {
			return nil, fmt.Errorf("bus: subscribe %s: %w", member, err)
		}
	}
	conn.Signal(w.sigs)
	go w.run()

	log.Printf("bus: subscribed to ObjectManager InterfacesAdded/InterfacesRemoved")
	return w, nil
}

// Events returns the stream of decoded endpoint notifications, in delivery
// order.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close unsubscribes and stops the translation goroutine. The Events channel
// is closed once the in-flight signals are drained.
func (w *Watcher) Close() error {
	var firstErr error
	for _, member := range []string{"InterfacesAdded", "InterfacesRemoved"} {
		if err := w.conn.RemoveMatchSignal(
			dbus.WithMatchInterface(objectManagerIface),
			dbus.WithMatchMember(member),
		); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.conn.RemoveSignal(w.sigs)
	close(w.sigs)
	return firstErr
}

func (w *Watcher) run() {
	defer close(w.events)
	for sig := range w.sigs {
		switch sig.Name {
		case interfacesAdded:
			w.handleAdded(sig.Body)
		case interfacesRemoved:
			w.handleRemoved(sig.Body)
		}
	}
}

// handleAdded unpacks an InterfacesAdded body (object path plus a map of
// interface name to property set) and emits an add event when the remote PCM
// interface is present.
func (w *Watcher) handleAdded(body []interface{}) {
	if len(body) < 2 {
		return
	}
	path, ok := body[0].(dbus.ObjectPath)
	if !ok {
		return
	}
	ifaces, ok := body[1].(map[string]map[string]dbus.Variant)
	if !ok {
		return
	}
	props, ok := ifaces[pcmInterface]
	if !ok {
		return
	}

	device := ExtractDeviceID(string(path))
	if device == "" {
		log.Printf("bus: cannot derive device id from %s", path)
		return
	}

	profile, dir, classified := classify(props)
	if !classified {
		// The notification payload carried nothing usable; ask the service
		// directly before falling back to the path heuristic.
		if queried, err := w.queryProps(path); err == nil {
			profile, dir, classified = classify(queried)
		} else {
			log.Printf("bus: property query for %s failed: %v", path, err)
		}
	}
	if !classified {
		profile = classifyFallback(string(path))
		log.Printf("bus: no profile advertised for %s, assuming %s from path", path, profile)
	}

	w.events <- Event{Kind: EndpointAdded, Endpoint: Endpoint{
		ObjectPath: string(path),
		Device:     device,
		Profile:    profile,
		Direction:  dir,
	}}
}

// handleRemoved unpacks an InterfacesRemoved body (object path plus the list
// of dropped interface names) and emits a removal event. Removal is matched
// by device id downstream, so the interface list itself is not inspected.
func (w *Watcher) handleRemoved(body []interface{}) {
	if len(body) < 1 {
		return
	}
	path, ok := body[0].(dbus.ObjectPath)
	if !ok {
		return
	}
	device := ExtractDeviceID(string(path))
	if device == "" {
		return
	}
	w.events <- Event{Kind: EndpointRemoved, Endpoint: Endpoint{
		ObjectPath: string(path),
		Device:     device,
	}}
}

func (w *Watcher) getAllProperties(path dbus.ObjectPath) (map[string]dbus.Variant, error) {
	var props map[string]dbus.Variant
	obj := w.conn.Object(pcmService, path)
	if err := obj.Call("org.freedesktop.DBus.Properties.GetAll", 0, pcmInterface).Store(&props); err != nil {
		return nil, err
	}
	return props, nil
}
