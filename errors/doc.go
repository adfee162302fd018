// Package errors provides the error taxonomy shared by the seqkit packages.
// Every failure is an *AppError carrying a machine-readable ErrorCode, so callers
// can branch on the kind of contract violation with errors.Is or HasCode.
package errors
