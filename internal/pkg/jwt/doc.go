// Package jwt issues and verifies the service tokens that internal callers
// present to the notification API.
//
// It includes:
//   - Claims: registered claims plus the calling service's scopes.
//   - Symmetric: an HS512 implementation for generating and verifying tokens.
//   - Context helpers for storing and retrieving authenticated claims.
package jwt
