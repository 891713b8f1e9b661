// Package sec provides authentication and authorization primitives for the
// web application.
//
// # Identity
//
// The session middleware resolves the browser's session into an [Identity]
// and stores it on the request context via connectrpc.com/authn. Handlers
// read it back with [GetIdentity]; the zero Identity is anonymous.
//
// # Ownership
//
// Recipes may only be modified by their owner. [Authorize] is the pure policy
// and [CheckOwner] maps its decision onto [ErrUnauthenticated] or
// [ErrNotOwner]. Callers must run the check before touching storage.
//
// # Components
//
//   - [Identity], [WithIdentity], [GetIdentity]: request-scoped identity
//   - [Authorize], [CheckOwner]: ownership policy
//   - [HashPassword], [ComparePassword], [CompareDummy]: bcrypt utilities
package sec
