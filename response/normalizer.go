package response

// Normalizer decodes response bodies for a client.
type Normalizer struct {
	// TransformHAL enables UnwrapHAL.
	TransformHAL bool
}

// Normalize decodes raw, unwrapping HAL envelopes when enabled.
func (n Normalizer) Normalize(raw []byte) (any, error) {
	if n.TransformHAL {
		return UnwrapHAL(raw)
	}
	return Decode(raw)
}
