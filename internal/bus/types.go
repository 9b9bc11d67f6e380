// Package bus watches the system D-Bus for remote PCM endpoints coming and
// going. It decodes BlueALSA ObjectManager signals into typed events at this
// boundary; nothing downstream sees raw bus payloads.
package bus

// Profile is the transport class of an endpoint. It selects which audio
// parameter set a bridge is launched with.
type Profile int

const (
	// ProfileStreaming is the high-bandwidth class (A2DP).
	ProfileStreaming Profile = iota
	// ProfileVoice is the low-bandwidth class (SCO/HFP/HSP).
	ProfileVoice
)

func (p Profile) String() string {
	if p == ProfileVoice {
		return "sco"
	}
	return "a2dp"
}

// Voice reports whether the profile belongs to the voice class.
func (p Profile) Voice() bool { return p == ProfileVoice }

// Direction is the endpoint's advertised stream direction, from the remote
// device's point of view.
type Direction int

const (
	DirectionUnknown Direction = iota
	// DirectionSource: the remote device produces audio (phone -> us).
	DirectionSource
	// DirectionSink: the remote device consumes audio (us -> headset).
	DirectionSink
)

func (d Direction) String() string {
	switch d {
	case DirectionSource:
		return "source"
	case DirectionSink:
		return "sink"
	default:
		return "unknown"
	}
}

// EventKind distinguishes endpoint arrival from removal.
type EventKind int

const (
	EndpointAdded EventKind = iota
	EndpointRemoved
)

// Endpoint describes one remote PCM object. It is transient: produced from a
// notification, consumed by the supervisor, then discarded.
type Endpoint struct {
	ObjectPath string
	Device     string
	Profile    Profile
	Direction  Direction
}

// Event is one add/remove notification after decoding.
type Event struct {
	Kind     EventKind
	Endpoint Endpoint
}
