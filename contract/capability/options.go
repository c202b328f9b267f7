package capability

// PublishOptions controls a single publish operation.
// Fields are transport-agnostic; adapters map them onto broker-specific concepts.
type PublishOptions struct {
	// Key selects a partition or routing hint where the transport supports one.
	Key string

	// Headers are carried with the message when the transport supports headers.
	Headers map[string]string
}
