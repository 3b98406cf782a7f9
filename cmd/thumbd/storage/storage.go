package storage

import "io"

// Storage is where generated thumbnails live.
type Storage interface {
	Upload(body io.Reader, filename string) error
	Download(filename string) (io.Reader, error)
	Exists(filename string) bool
}
