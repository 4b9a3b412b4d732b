package ports

// VisaDirectory maps a destination to an advisory string. Lookup is total:
// unknown destinations yield a fallback advisory, never an error.
type VisaDirectory interface {
	Lookup(destination string) string
}
