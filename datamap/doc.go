// Package datamap cleans decoded payload values before they go on the wire.
//
// Every function is side-effect free: inputs are never modified and the
// result is a freshly allocated structure. Values are the shapes produced by
// encoding/json (map[string]any, []any, scalars) plus arbitrary typed maps
// and slices, which are walked through reflection.
//
// Request payloads are cleaned in a fixed order by Normalize:
//
//	RejectNullValues -> RejectEmptyContainerValues -> RemovePrefixFromKeys -> ToSnakeCasedKeys
package datamap
