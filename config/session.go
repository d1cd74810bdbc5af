package config

import "github.com/fxamacker/cbor/v2"

// sessionSnapshot is the CBOR wire form of a Store, letting a host
// persist the last-used radius/strength across process restarts
// without the caller needing to know Store's internal layout.
type sessionSnapshot struct {
	LastRadius   float64 `cbor:"last_radius"`
	LastStrength float64 `cbor:"last_strength"`
}

// MarshalSession encodes the store's current defaults as CBOR.
func (s *Store) MarshalSession() ([]byte, error) {
	s.mu.Lock()
	snap := sessionSnapshot{LastRadius: s.lastRadius, LastStrength: s.lastStrength}
	s.mu.Unlock()
	return cbor.Marshal(snap)
}

// UnmarshalSession restores a store's defaults from a blob produced
// by MarshalSession. Fields absent from an older blob keep their
// current value rather than being zeroed.
func (s *Store) UnmarshalSession(data []byte) error {
	var snap sessionSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.LastRadius != 0 {
		s.lastRadius = snap.LastRadius
	}
	if snap.LastStrength != 0 {
		s.lastStrength = snap.LastStrength
	}
	return nil
}
