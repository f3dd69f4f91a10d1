package hal

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuinfo/types"
)

// ErrNoBackend is returned by the stub backend compiled in with the nogpu
// build tag.
var ErrNoBackend = errors.New("hal: no GPU backend compiled in")

// Backend enumerates the GPUs of one native graphics API.
//
// Exactly one Backend is compiled into gpuinfo per target platform; there
// is no runtime negotiation between backends. Implementations acquire any
// native handles they need inside Enumerate and release them before it
// returns, on success and on failure.
type Backend interface {
	// Variant identifies the native API behind the backend.
	Variant() gputypes.Backend

	// Enumerate lists the devices visible to the API and maps each to the
	// unified descriptor. On success the slice is non-nil. Either the full
	// list or a single error is returned; there is no partial result.
	Enumerate() ([]types.GPU, error)
}

// Stub is the Backend used when no native backend is compiled in.
type Stub struct{}

var _ Backend = Stub{}

// Variant returns gputypes.BackendEmpty.
func (Stub) Variant() gputypes.Backend { return gputypes.BackendEmpty }

// Enumerate always fails with ErrNoBackend.
func (Stub) Enumerate() ([]types.GPU, error) { return nil, ErrNoBackend }
