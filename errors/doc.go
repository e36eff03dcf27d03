// Package errors provides the coded error type shared by every apiruntime
// package. Each failure kind of the runtime (invalid parameters, unknown
// endpoints, transport failures, missing last response, ...) is an *AppError
// with a machine-readable ErrorCode and optional structured details.
package errors
