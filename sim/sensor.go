package sim

// TrackAssessment is the sensor chain's verdict on one object.
type TrackAssessment uint8

const (
	// AssessUndetected: the object was never seen. An undetected real
	// warhead penetrates; an undetected decoy simply vanishes from the
	// diagnostics.
	AssessUndetected TrackAssessment = iota
	// AssessRejected: detected, but the track was not classified as a
	// warhead threat. Never engaged.
	AssessRejected
	// AssessThreat: detected and classified as a warhead-track; eligible
	// for engagement while inventory lasts.
	AssessThreat
)

// Sensor is the detection + classification stage for one trial, carrying the
// trial's operative detection probability and the configured classifier
// rates. Each Assess call is two independent Bernoulli draws at most:
// detection first, then classification conditioned on the object's true kind.
type Sensor struct {
	PDetect float64 // operative detection probability (post-degradation)
	TPR     float64 // P(warhead-track | true warhead)
	FPR     float64 // P(warhead-track | true decoy)
}

// Assess runs one object through detection and classification.
func (s Sensor) Assess(tgt Target, stream *Stream) TrackAssessment {
	if !stream.Bernoulli(s.PDetect) {
		return AssessUndetected
	}

	pThreat := s.FPR
	if tgt.Kind == KindWarhead {
		pThreat = s.TPR
	}
	if stream.Bernoulli(pThreat) {
		return AssessThreat
	}
	return AssessRejected
}
