package domain

// LaunchSpec is everything needed to start the supervised child.
type LaunchSpec struct {
	Path string
	Args []string
	Env  []string
}
