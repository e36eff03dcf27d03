// Package response turns raw JSON response bodies into the values callers
// work with.
//
// Decode treats an empty body and a literal null as an empty object, so a
// 204 No Content never reaches callers as nil. UnwrapHAL additionally strips
// a HAL envelope: the first entry of "_embedded" replaces the body and
// "_links" is removed. It works on the raw bytes because "first" means
// document order, which a decoded Go map does not keep.
//
// As and Union map decoded values onto typed structs using their json tags.
package response
