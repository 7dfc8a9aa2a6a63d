// Package storage persists screen-recording artifacts. The survey treats the
// blob store as an external collaborator, so the interface is small: put a
// stream under a nested folder path, get a durable reference back.
package storage

import (
	"context"
	"io"
	"regexp"
	"strings"
)

type Uploader interface {
	// Upload stores the stream under the given folder chain and returns a
	// durable reference to the stored object.
	Upload(ctx context.Context, folders []string, filename string, r io.Reader) (string, error)
}

var (
	unsafeChars = regexp.MustCompile(`[\\/\n\r\t]`)
	nonPortable = regexp.MustCompile(`[^A-Za-z0-9._ -]`)
	squeeze     = regexp.MustCompile(`[ _]+`)
)

// SanitizeFilename makes a name safe for any backing store by replacing
// separator and non-portable characters.
func SanitizeFilename(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "_")
	safe = nonPortable.ReplaceAllString(safe, "_")
	safe = strings.Trim(squeeze.ReplaceAllString(safe, "_"), "_ ")
	if safe == "" {
		return "uploaded_file"
	}
	return safe
}
