package bus

import (
	"strings"

	"github.com/godbus/dbus/v5"
)

// property is the decoded form of one bus property. The duck-typed variant
// payloads are folded into this tagged form exactly once, here.
type property interface{ isProperty() }

type profileProp string
type directionProp string
type unknownProp struct {
	name string
	raw  dbus.Variant
}

func (profileProp) isProperty()   {}
func (directionProp) isProperty() {}
func (unknownProp) isProperty()   {}

func decodeProperty(name string, v dbus.Variant) property {
	s, ok := v.Value().(string)
	if !ok {
		return unknownProp{name: name, raw: v}
	}
	switch name {
	case "Profile":
		return profileProp(s)
	case "Direction", "Type":
		// Older BlueALSA revisions call the direction "Type".
		return directionProp(s)
	default:
		return unknownProp{name: name, raw: v}
	}
}

// classify folds a property set into (profile, direction, ok). ok is false
// when the properties carry no usable profile and the caller should fall
// back to the path heuristic.
func classify(props map[string]dbus.Variant) (Profile, Direction, bool) {
	var profile, direction string
	for name, v := range props {
		switch p := decodeProperty(name, v).(type) {
		case profileProp:
			profile = strings.ToLower(string(p))
		case directionProp:
			if direction == "" {
				direction = strings.ToLower(string(p))
			}
		}
	}

	dir := DirectionUnknown
	switch direction {
	case "source":
		dir = DirectionSource
	case "sink":
		dir = DirectionSink
	}

	switch {
	case strings.Contains(profile, "a2dp"):
		return ProfileStreaming, dir, true
	case isVoiceMarker(profile) || isVoiceMarker(direction):
		return ProfileVoice, dir, true
	default:
		return ProfileStreaming, dir, false
	}
}

// classifyFallback guesses the profile from the object path. This is a
// best-effort heuristic with no contract from the remote service: a voice
// marker substring selects the voice class, anything else is assumed to be
// streaming.
func classifyFallback(objectPath string) Profile {
	if isVoiceMarker(strings.ToLower(objectPath)) {
		return ProfileVoice
	}
	return ProfileStreaming
}

func isVoiceMarker(s string) bool {
	for _, marker := range []string{"sco", "hfp", "hsp"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// ExtractDeviceID derives the normalized device address from a bus object
// path. Paths look like /org/bluealsa/hci0/dev_AA_BB_CC_DD_EE_FF/fd0; the
// trailing address segment is extracted and its underscores turned into the
// canonical colon delimiter. Returns "" when no address can be derived.
func ExtractDeviceID(objectPath string) string {
	if objectPath == "" {
		return ""
	}
	seg := objectPath
	if i := strings.Index(objectPath, "/dev_"); i >= 0 {
		seg = objectPath[i+len("/dev_"):]
		if j := strings.IndexByte(seg, '/'); j >= 0 {
			seg = seg[:j]
		}
	} else {
		// Some services embed the address as the last path segment.
		if j := strings.LastIndexByte(objectPath, '/'); j >= 0 {
			seg = objectPath[j+1:]
		}
		if seg == "" {
			return ""
		}
	}
	return strings.ReplaceAll(seg, "_", ":")
}
