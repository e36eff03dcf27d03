// Package request assembles the transport options for one call.
//
// Build starts from the options an OptionBuilder returns (if any) and fills
// the query, json and form slots from the endpoint's prepared inputs, but
// only the slots the override left unset and only with non-empty values.
// Caller overrides always win.
package request
