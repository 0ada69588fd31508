package jsonvalue

const (
	// Path resolution limits
	DefaultMaxPathDepth  = 256
	DefaultMaxArrayIndex = 1 << 20

	// Hashing
	DefaultMaxHashDepth = 128
	HashSentinel        = uint64(0x9e3779b97f4a7c15)

	// Decoder limits for the JSON and YAML bridges
	DefaultMaxNestingDepth = 512

	// Logging
	MaxLoggedPathLength = 100
	componentName       = "jsonvalue"
)
