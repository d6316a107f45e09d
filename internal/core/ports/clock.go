package ports

import "time"

// Clock supplies the current UTC timestamp for every "as of now" comparison
// and audit stamp. Handlers take it as a dependency so tests control time.
type Clock interface {
	Now() time.Time
}
