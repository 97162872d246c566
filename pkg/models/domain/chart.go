package domain

// ChartRequest is a validated request for one merged contribution chart.
type ChartRequest struct {
	// Primary is the configured account; it is always part of the merge set.
	Primary string
	// Secondaries are the requested merge accounts, before authorization.
	Secondaries []string
	Years       int
	Theme       string
}
