package core

import "fmt"

var Owners []interface{}

// IdentifierAcquireNewID hands out the lowest free slot id, growing the
// owner table when none is available.
func IdentifierAcquireNewID(owner interface{}) uint32 {
	if len(Owners) == 0 {
		Owners = make([]interface{}, 100)
	}
	length := uint32(len(Owners))
	for i := uint32(0); i < length; i++ {
		// Existing free spot. Take it.
		if Owners[i] == nil {
			Owners[i] = owner
			return i
		}
	}

	// If here, no existing free slots. Need a new id, so push one.
	// This means the id will be length - 1
	Owners = append(Owners, owner)
	length = uint32(len(Owners))
	return length - 1
}

func IdentifierReleaseID(id uint32) error {
	if len(Owners) == 0 {
		return fmt.Errorf("IdentifierReleaseID called before any id was acquired, nothing was done")
	}

	length := uint32(len(Owners))
	if id > length {
		return fmt.Errorf("IdentifierReleaseID: id '%d' out of range (max=%d), nothing was done", id, length)
	}

	// Just zero out the entry, making it available for use.
	Owners[id] = nil
	return nil
}
