// Package workers runs the client's background workers, currently the
// periodic contact sync, behind one small runner.
package workers

// Worker is a background task started by the runner. Run either blocks for
// the lifetime of the work or spawns its own goroutines and returns.
type Worker interface {
	Run()
}
