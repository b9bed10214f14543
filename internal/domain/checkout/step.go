package checkout

import "fmt"

type Step string

const (
	StepAddress Step = "address"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

type Event string

const (
	EventAddressAccepted  Event = "ADDRESS_ACCEPTED"
	EventGoBack           Event = "GO_BACK"
	EventPaymentConfirmed Event = "PAYMENT_CONFIRMED"
)

// 遷移表。StepSuccessからの遷移は無い。
var transitions = map[Step]map[Event]Step{
	StepAddress: {
		EventAddressAccepted: StepPayment,
	},
	StepPayment: {
		EventGoBack:           StepAddress,
		EventPaymentConfirmed: StepSuccess,
	},
}

func transition(from Step, ev Event) (Step, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, from)
	}
	return to, nil
}

// 終端か
func (s Step) Terminal() bool {
	return len(transitions[s]) == 0
}
