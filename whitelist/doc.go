// Package whitelist checks caller-supplied parameters against the closed set
// of names an endpoint accepts.
//
// Whitelist entries may carry the array marker "[]" ("ids[]"), meaning the
// parameter may be sent as a repeated value. The marker only matters for
// matching; NormalizeEntry strips it.
//
// Validate is used when parameters are written and fails with an
// INVALID_PARAMETER *errors.AppError. Filter is used when they are read and
// silently drops anything outside the whitelist. ExpandDottedKeys turns
// "filter.status" style keys into nested maps.
package whitelist
