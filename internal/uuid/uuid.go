package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// Namespace is the name space for identifiers derived from record content.
var Namespace = google_uuid.NewSHA1(google_uuid.NameSpaceURL, []byte("https://findash.dev/transactions"))

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Derive returns the version 5 UUID for data in Namespace.
//
// The same data always yields the same UUID.
func Derive(data []byte) UUID {
	return UUID{google_uuid.NewSHA1(Namespace, data)}
}

// Parse decodes s into a UUID. The empty string parses to Nil.
func Parse(s string) (UUID, error) {
	if s == "" {
		return Nil, nil
	}

	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}

	return UUID{parsed}, nil
}
