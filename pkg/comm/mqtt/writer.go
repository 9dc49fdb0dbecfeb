package mqtt

// TopicWriter adapts a Queue topic as an io.Writer, one message per
// Write. It lets the coordination log publish its lines to the broker.
type TopicWriter struct {
	Queue *Queue
	Topic string
}

// Write implements io.Writer. Publishing is fire-and-forget: the loop
// must not stall on a slow broker.
func (w *TopicWriter) Write(p []byte) (int, error) {
	payload := make([]byte, len(p))
	copy(payload, p)
	w.Queue.Pub(w.Topic, payload)
	return len(p), nil
}
