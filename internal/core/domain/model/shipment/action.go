package shipment

// Action is a lifecycle operation attempted on a shipment.
type Action string

const (
	ActionAssign         Action = "assign driver"
	ActionPickUp         Action = "mark picked up"
	ActionStartTransit   Action = "mark in transit"
	ActionOutForDelivery Action = "mark out for delivery"
	ActionDeliver        Action = "mark delivered"
	ActionFail           Action = "mark failed"
	ActionCancel         Action = "cancel"
)

func (a Action) String() string {
	return string(a)
}

// Actions lists the actions governed by the transition table.
func Actions() []Action {
	return []Action{
		ActionAssign,
		ActionPickUp,
		ActionStartTransit,
		ActionOutForDelivery,
		ActionDeliver,
		ActionFail,
		ActionCancel,
	}
}

// transitionTable maps each action to the statuses it is accepted from and
// the status each of them leads to.
func transitionTable() map[Action]map[Status]Status {
	return map[Action]map[Status]Status{
		ActionAssign: {
			Pending:        Assigned,
			Assigned:       Assigned,
			PickedUp:       PickedUp,
			InTransit:      InTransit,
			OutForDelivery: OutForDelivery,
		},
		ActionPickUp:         {Assigned: PickedUp},
		ActionStartTransit:   {PickedUp: InTransit},
		ActionOutForDelivery: {InTransit: OutForDelivery},
		ActionDeliver:        {InTransit: Delivered, OutForDelivery: Delivered},
		ActionFail: {
			Pending:        Failed,
			Assigned:       Failed,
			PickedUp:       Failed,
			InTransit:      Failed,
			OutForDelivery: Failed,
		},
		ActionCancel: {Pending: Cancelled},
	}
}

// Side actions do not change the status but are only accepted in some statuses.
const (
	ActionCollectCOD     Action = "collect COD"
	ActionConfirmCustoms Action = "confirm customs clearance"
	ActionReportDelay    Action = "report delay"
)

func sideActionStatuses() map[Action][]Status {
	return map[Action][]Status{
		ActionCollectCOD:     {InTransit, OutForDelivery, Delivered},
		ActionConfirmCustoms: ActiveStatuses(),
		ActionReportDelay:    ActiveStatuses(),
	}
}
