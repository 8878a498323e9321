package fediskema

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen    Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                      // Field value was null.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Seen reports whether the pointer appeared in the input.
func (pm PresenceMap) Seen(pointer string) bool { return pm[pointer]&PresenceSeen != 0 }

// WasNull reports whether the pointer was present with an explicit null.
func (pm PresenceMap) WasNull(pointer string) bool { return pm[pointer]&PresenceWasNull != 0 }

// Decoded carries the decoded value along with presence metadata and the
// warnings recorded while decoding it.
//
// Optional fields decode to nil both when the key is absent and when it is
// null; Presence is how a caller tells the two apart.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
	Warnings Issues
}
