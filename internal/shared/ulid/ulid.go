package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used as request ID when the
// client did not send one.
var NewULID = func() string {
	return ulid.Make().String()
}
