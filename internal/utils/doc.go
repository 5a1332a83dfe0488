// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes HTTP client initialization, request id generation and
// inspection of bearer tokens.
package utils
