package driver

// Frame is a copied extraction with the simulated time it was taken at.
type Frame struct {
	Step int
	Time float64
	Data []float32
}

// Recorder keeps every Every-th frame. Each Render call is assumed to follow
// exactly one step of length dt.
type Recorder struct {
	every  int
	dt     float64
	steps  int
	Frames []Frame
}

func NewRecorder(every int, dt float64) *Recorder {
	if every <= 0 {
		every = 1
	}
	return &Recorder{every: every, dt: dt}
}

func (r *Recorder) Render(frame []float32) error {
	r.steps++
	if r.steps%r.every != 0 {
		return nil
	}
	data := make([]float32, len(frame))
	copy(data, frame)
	r.Frames = append(r.Frames, Frame{Step: r.steps, Time: float64(r.steps) * r.dt, Data: data})
	return nil
}

// Seed records an initial frame at step 0.
func (r *Recorder) Seed(frame []float32) {
	data := make([]float32, len(frame))
	copy(data, frame)
	r.Frames = append(r.Frames, Frame{Data: data})
}
