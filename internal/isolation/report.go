package isolation

// Assignment pairs a vehicle with the driver who will race it. VehiclePath
// is relative to the vehicle library root.
type Assignment struct {
	VehiclePath string
	DriverName  string
}

// ItemResult is the outcome of isolating one assignment.
type ItemResult struct {
	Assignment   Assignment
	IsolatedPath string // relative, forward slashes; empty on failure
	Err          error
}

// Report is the outcome of an isolation batch. Individual failures do not
// abort the batch; they land here.
type Report struct {
	BatchID string
	Folder  string
	Items   []ItemResult
}

// Isolated maps each successfully isolated original path to its new
// relative path.
func (r *Report) Isolated() map[string]string {
	paths := make(map[string]string)
	for _, item := range r.Items {
		if item.Err == nil {
			paths[item.Assignment.VehiclePath] = item.IsolatedPath
		}
	}
	return paths
}

// IsolatedPaths returns the new relative paths in assignment order.
func (r *Report) IsolatedPaths() []string {
	var paths []string
	for _, item := range r.Items {
		if item.Err == nil {
			paths = append(paths, item.IsolatedPath)
		}
	}
	return paths
}

// Succeeded returns how many assignments isolated cleanly.
func (r *Report) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns how many assignments failed.
func (r *Report) Failed() int {
	return len(r.Items) - r.Succeeded()
}
