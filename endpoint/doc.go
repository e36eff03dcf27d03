// Package endpoint describes API operations and prepares their inputs.
//
// A Definition is the static record of one operation: name, HTTP method,
// URI template, route parameter names and the parameter whitelist.
// Definitions are registered in a Registry, either in code or from a YAML
// table:
//
//	endpoints:
//	  - name: getPetPhotos
//	    method: GET
//	    uri: /pets/{petId}/photos
//	    route_params: [petId]
//	    params: [page, size, tags[]]
//
// A Builder turns a registered name into a fresh Descriptor, preset with the
// client's snake_case flags and reserved key prefix. The Descriptor is a
// single-use, single-goroutine builder for one call: parameters are
// validated against the whitelist before they are stored, body and form
// data are cleaned with datamap.Normalize, and the accessors expose the
// views the request builder consumes.
package endpoint
