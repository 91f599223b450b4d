package types

// DefaultVersion is the fallback version when no AppContext is bound
const DefaultVersion = "dev"

// AppContext holds application-wide context passed to commands via kong.Bind
type AppContext struct {
	Version string
}
