package domain

// CheckoutStep is one of the five linear wizard states.
type CheckoutStep int

const (
	StepCart         CheckoutStep = 1
	StepCustomerInfo CheckoutStep = 2
	StepShipping     CheckoutStep = 3
	StepPayment      CheckoutStep = 4
	StepConfirmation CheckoutStep = 5
)

// CanAdvanceTo reports whether moving forward from s to next is a legal
// wizard transition. The flow is strictly linear; Payment to Confirmation
// only happens through order submission, which uses this same check.
func (s CheckoutStep) CanAdvanceTo(next CheckoutStep) bool {
	return next == s+1 && s >= StepCart && s < StepConfirmation
}

// CanGoBack reports whether a back transition exists from this step.
// There is no back transition from Confirmation.
func (s CheckoutStep) CanGoBack() bool {
	return s > StepCart && s < StepConfirmation
}

func (s CheckoutStep) IsTerminal() bool {
	return s == StepConfirmation
}

func (s CheckoutStep) String() string {
	switch s {
	case StepCart:
		return "cart"
	case StepCustomerInfo:
		return "customer_info"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}
