package order

// Milestone is one step of the fixed delivery timeline.
type Milestone struct {
	Label    string `json:"label"`
	Complete bool   `json:"complete"`
}

// Timeline is the visual projection of a single order status. When the
// status is terminal (cancelled/refunded) only Terminal is set and the
// milestone list is empty.
type Timeline struct {
	Milestones []Milestone `json:"milestones,omitempty"`
	Terminal   string      `json:"terminal,omitempty"`
}

// milestoneThresholds maps each milestone label to the minimum status
// rank at which it renders complete.
var milestoneThresholds = []struct {
	label string
	rank  int
}{
	{"Placed", statusRank[StatusPlaced]},
	{"Processing", statusRank[StatusProcessing]},
	{"Delivering", statusRank[StatusShipped]},
	{"Delivered", statusRank[StatusDelivered]},
}

// ProjectTimeline maps an order status to the completion state of the
// four fixed milestones. Unrecognized statuses render nothing complete.
func ProjectTimeline(s Status) Timeline {
	if s.Terminal() {
		return Timeline{Terminal: string(s)}
	}

	rank, known := statusRank[s]
	if !known {
		rank = -1
	}

	milestones := make([]Milestone, 0, len(milestoneThresholds))
	for _, m := range milestoneThresholds {
		milestones = append(milestones, Milestone{
			Label:    m.label,
			Complete: known && rank >= m.rank,
		})
	}

	return Timeline{Milestones: milestones}
}
