package ui

// pagerMsg contains the result of an external pager run
type pagerMsg struct {
	err error
}
