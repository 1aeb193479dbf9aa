package slider

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out interval ids. The store retries until an id is free,
// so a generator only has to be unlikely to repeat itself.
type IDGenerator interface {
	NextID() string
}

// SequenceIDs derives name-based (SHA-1) UUIDs from a namespace and a
// monotonic counter. Two generators with the same namespace produce the same
// sequence, which keeps tests and replays deterministic.
type SequenceIDs struct {
	namespace uuid.UUID
	n         uint64
}

func NewSequenceIDs(namespace uuid.UUID) *SequenceIDs {
	return &SequenceIDs{namespace: namespace}
}

// NewRandomSequenceIDs uses a fresh random namespace.
func NewRandomSequenceIDs() *SequenceIDs {
	return NewSequenceIDs(uuid.New())
}

func (s *SequenceIDs) NextID() string {
	s.n++
	return uuid.NewSHA1(s.namespace, []byte(strconv.FormatUint(s.n, 10))).String()
}

// assignIDs fills in missing ids. Supplied ids are kept; when strict is set a
// repeated supplied id is reported through dup, otherwise the repeat is
// replaced by a generated id.
func assignIDs(ids IDGenerator, supplied []string, strict bool) (out []string, dup string) {
	taken := make(map[string]bool, len(supplied))
	out = make([]string, len(supplied))

	for i, id := range supplied {
		if id == "" {
			continue
		}
		if taken[id] {
			if strict {
				return nil, id
			}
			continue
		}
		taken[id] = true
		out[i] = id
	}

	for i := range out {
		if out[i] != "" {
			continue
		}
		out[i] = freshID(ids, taken)
		taken[out[i]] = true
	}
	return out, ""
}

func freshID(ids IDGenerator, taken map[string]bool) string {
	for {
		id := ids.NextID()
		if id != "" && !taken[id] {
			return id
		}
	}
}
