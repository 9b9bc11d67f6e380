package bus

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestExtractDeviceID(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/fd0", "AA:BB:CC:DD:EE:FF"},
		{"/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF", "AA:BB:CC:DD:EE:FF"},
		{"/org/bluealsa/hci0/AA_BB_CC_DD_EE_FF", "AA:BB:CC:DD:EE:FF"},
		{"/org/bluealsa/hci0/AA:BB:CC:DD:EE:FF", "AA:BB:CC:DD:EE:FF"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractDeviceID(tc.path); got != tc.want {
			t.Errorf("ExtractDeviceID(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestClassifyFromProperties(t *testing.T) {
	cases := []struct {
		name    string
		props   map[string]dbus.Variant
		profile Profile
		dir     Direction
		ok      bool
	}{
		{
			name: "a2dp source",
			props: map[string]dbus.Variant{
				"Profile":   dbus.MakeVariant("a2dp"),
				"Direction": dbus.MakeVariant("source"),
			},
			profile: ProfileStreaming, dir: DirectionSource, ok: true,
		},
		{
			name: "a2dp sink",
			props: map[string]dbus.Variant{
				"Profile":   dbus.MakeVariant("A2DP"),
				"Direction": dbus.MakeVariant("sink"),
			},
			profile: ProfileStreaming, dir: DirectionSink, ok: true,
		},
		{
			name: "hfp via profile",
			props: map[string]dbus.Variant{
				"Profile": dbus.MakeVariant("hfp-ag"),
			},
			profile: ProfileVoice, dir: DirectionUnknown, ok: true,
		},
		{
			name: "sco via legacy type key",
			props: map[string]dbus.Variant{
				"Type": dbus.MakeVariant("sco"),
			},
			profile: ProfileVoice, dir: DirectionUnknown, ok: true,
		},
		{
			name: "nothing usable",
			props: map[string]dbus.Variant{
				"Codec": dbus.MakeVariant(uint16(4)),
			},
			profile: ProfileStreaming, dir: DirectionUnknown, ok: false,
		},
	}
	for _, tc := range cases {
		profile, dir, ok := classify(tc.props)
		if profile != tc.profile || dir != tc.dir || ok != tc.ok {
			t.Errorf("%s: classify = (%v, %v, %v), want (%v, %v, %v)",
				tc.name, profile, dir, ok, tc.profile, tc.dir, tc.ok)
		}
	}
}

func TestClassifyFallback(t *testing.T) {
	if got := classifyFallback("/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/sco"); got != ProfileVoice {
		t.Fatalf("sco path should classify as voice, got %v", got)
	}
	if got := classifyFallback("/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/a2dp"); got != ProfileStreaming {
		t.Fatalf("a2dp path should classify as streaming, got %v", got)
	}
}

func testWatcher() *Watcher {
	return &Watcher{
		events: make(chan Event, 4),
		queryProps: func(dbus.ObjectPath) (map[string]dbus.Variant, error) {
			return nil, errors.New("no bus in tests")
		},
	}
}

func TestHandleAddedEmitsEndpoint(t *testing.T) {
	w := testWatcher()
	w.handleAdded([]interface{}{
		dbus.ObjectPath("/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/fd1"),
		map[string]map[string]dbus.Variant{
			pcmInterface: {
				"Profile":   dbus.MakeVariant("a2dp"),
				"Direction": dbus.MakeVariant("source"),
			},
		},
	})

	select {
	case ev := <-w.events:
		if ev.Kind != EndpointAdded {
			t.Fatalf("kind = %v", ev.Kind)
		}
		if ev.Endpoint.Device != "AA:BB:CC:DD:EE:FF" {
			t.Fatalf("device = %q", ev.Endpoint.Device)
		}
		if ev.Endpoint.Profile != ProfileStreaming || ev.Endpoint.Direction != DirectionSource {
			t.Fatalf("classification = %v/%v", ev.Endpoint.Profile, ev.Endpoint.Direction)
		}
	default:
		t.Fatal("no event emitted")
	}
}

func TestHandleAddedIgnoresForeignInterfaces(t *testing.T) {
	w := testWatcher()
	w.handleAdded([]interface{}{
		dbus.ObjectPath("/org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF"),
		map[string]map[string]dbus.Variant{
			"org.bluez.Device1": {},
		},
	})
	select {
	case ev := <-w.events:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestHandleAddedQueriesPropertiesWhenPayloadIsBare(t *testing.T) {
	w := testWatcher()
	queried := false
	w.queryProps = func(path dbus.ObjectPath) (map[string]dbus.Variant, error) {
		queried = true
		return map[string]dbus.Variant{"Profile": dbus.MakeVariant("sco")}, nil
	}
	w.handleAdded([]interface{}{
		dbus.ObjectPath("/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/fd0"),
		map[string]map[string]dbus.Variant{pcmInterface: {}},
	})
	if !queried {
		t.Fatal("expected a property query for a bare payload")
	}
	ev := <-w.events
	if ev.Endpoint.Profile != ProfileVoice {
		t.Fatalf("profile = %v, want voice from queried properties", ev.Endpoint.Profile)
	}
}

func TestHandleAddedFallsBackToPathHeuristic(t *testing.T) {
	w := testWatcher()
	w.handleAdded([]interface{}{
		dbus.ObjectPath("/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/sco"),
		map[string]map[string]dbus.Variant{pcmInterface: {}},
	})
	ev := <-w.events
	if ev.Endpoint.Profile != ProfileVoice {
		t.Fatalf("profile = %v, want voice via path fallback", ev.Endpoint.Profile)
	}
	if ev.Endpoint.Direction != DirectionUnknown {
		t.Fatalf("direction = %v, want unknown", ev.Endpoint.Direction)
	}
}

func TestHandleRemovedEmitsDevice(t *testing.T) {
	w := testWatcher()
	w.handleRemoved([]interface{}{
		dbus.ObjectPath("/org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/fd1"),
		[]string{pcmInterface},
	})
	ev := <-w.events
	if ev.Kind != EndpointRemoved || ev.Endpoint.Device != "AA:BB:CC:DD:EE:FF" {
		t.Fatalf("unexpected removal event %+v", ev)
	}
}
