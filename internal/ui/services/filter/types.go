package filter

// State holds the current query. Query is nil when absent; any value other
// than a string matches nothing.
type State struct {
	Query any
}
