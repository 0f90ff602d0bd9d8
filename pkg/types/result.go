package types

// LoadResult is the outcome of reading user links. Links is never nil; on
// failure it is empty and Err says why.
type LoadResult struct {
	Links []Link
	Err   error
}

// OK reports whether the links were read without error.
func (r LoadResult) OK() bool {
	return r.Err == nil
}
