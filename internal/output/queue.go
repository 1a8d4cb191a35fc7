package output

// Queue is an ordered queue of decoded PCM buffers. The decoder
// enqueues one buffer per packet; the consumer drains it with
// ReadBuffer. It is not safe for concurrent use, matching the
// decoder's single-threaded model.
type Queue struct {
	bufs     [][]int16
	offset   int // read position within bufs[0]
	finished bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a buffer. The queue takes ownership of samples.
func (q *Queue) Enqueue(samples []int16) {
	if len(samples) == 0 {
		return
	}
	q.bufs = append(q.bufs, samples)
}

// ReadBuffer copies up to len(dst) queued samples into dst and
// returns the number of samples copied.
func (q *Queue) ReadBuffer(dst []int16) int {
	read := 0
	for read < len(dst) && len(q.bufs) > 0 {
		n := copy(dst[read:], q.bufs[0][q.offset:])
		read += n
		q.offset += n

		if q.offset == len(q.bufs[0]) {
			q.bufs = q.bufs[1:]
			q.offset = 0
		}
	}
	return read
}

// EndOfData reports whether no queued samples remain.
func (q *Queue) EndOfData() bool {
	return len(q.bufs) == 0
}

// EndOfStream reports whether the stream is finished and drained.
func (q *Queue) EndOfStream() bool {
	return q.finished && q.EndOfData()
}

// Finish marks that no more buffers will be enqueued.
func (q *Queue) Finish() {
	q.finished = true
}

// IsFinished reports whether Finish has been called.
func (q *Queue) IsFinished() bool {
	return q.finished
}
