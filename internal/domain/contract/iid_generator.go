package contract

// IIDGenerator produces identifiers for newly created records. Implementations
// must return unique ids that sort by creation time.
type IIDGenerator interface {
	NewID() string
}
