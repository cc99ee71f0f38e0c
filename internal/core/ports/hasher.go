package ports

// Hasher computes content digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile returns the digest of the file's content.
	HashFile(path string) (uint64, error)
	// HashBytes returns the digest of data.
	HashBytes(data []byte) uint64
}
