package domain

// stepLabels maps each phase to the label shown in the tracking stepper.
var stepLabels = map[Status]string{
	StatusDispatched:      "Dispatched",
	StatusInTransit:       "In Transit",
	StatusNearDestination: "Near Hub",
	StatusDelivered:       "Delivered",
}

// ProgressStep is one entry of the 4-step tracking progress display.
type ProgressStep struct {
	// Status is the phase this step represents.
	Status Status `json:"status"`
	// Label is the display name for the step.
	Label string `json:"label"`
	// Reached is true if the shipment has passed or is at this step.
	Reached bool `json:"reached"`
	// Current is true for exactly one step, the shipment's current phase.
	Current bool `json:"current"`
}

// Progress projects a shipment status onto the ordered step sequence.
// Reached flags always form a prefix of the sequence because they derive
// from a single rank comparison. An unrecognized status is rejected with
// ErrInvalidStatus rather than silently defaulted.
func Progress(status Status) ([]ProgressStep, error) {
	rank, err := status.Rank()
	if err != nil {
		return nil, err
	}

	steps := make([]ProgressStep, len(statusOrder))
	for i, st := range statusOrder {
		steps[i] = ProgressStep{
			Status:  st,
			Label:   stepLabels[st],
			Reached: i <= rank,
			Current: i == rank,
		}
	}
	return steps, nil
}
