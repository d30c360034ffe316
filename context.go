package custody

import "context"

// Context is just the standard context, renamed here so all extension
// code refers to one vocabulary. Authentication information travels
// through it, set by the host and read by an x.Authenticator.
type Context = context.Context
