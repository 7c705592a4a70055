package libdiff

// Operation keys.
const (
	DeleteKey   = "-"
	InsertKey   = "+"
	KeepKey     = "="
	MappingKey  = "{}"
	SequenceKey = "[]"
	StringKey   = "~"
	OrderKey    = "keys"
)

// strings shorter than this are always replaced whole.
const minStringDiff = 32
