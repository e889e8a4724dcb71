// internal/wizard/wizard.go
package wizard

import (
	"fmt"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// ==========================
// STEPS
// ==========================

// Step is one screen of the subscription flow.
type Step string

const (
	StepPackageSelect   Step = "package_select"
	StepProfileSetup    Step = "profile_setup"
	StepLocationEntry   Step = "location_entry"
	StepLocationPayment Step = "location_payment"
	StepPackagePayment  Step = "package_payment"
	StepCompleted       Step = "completed"
)

// ==========================
// EVENTS
// ==========================

// Event is something the user or a payment callback does to advance the
// flow. Each concrete event is only legal at specific steps.
type Event interface {
	isEvent()
}

// PackageChosen carries the package picked on the first screen.
type PackageChosen struct {
	Package   models.Package
	Duration  string
	PromoCode string
}

// ProfileCompleted carries the organization profile from the setup screen.
type ProfileCompleted struct {
	Profile models.ProfileData
}

// LocationCompleted carries the fully resolved verification address.
type LocationCompleted struct {
	Location models.LocationSelection
}

// LocationPaid acknowledges the verification-fee payment step.
type LocationPaid struct{}

// PaymentSucceeded ends the flow after the package payment clears.
type PaymentSucceeded struct {
	TransactionID string
}

// PaymentFailed aborts the flow back to package selection.
type PaymentFailed struct {
	Reason string
}

// WentBack pops to the previous step without discarding anything the user
// already entered.
type WentBack struct{}

func (PackageChosen) isEvent()     {}
func (ProfileCompleted) isEvent()  {}
func (LocationCompleted) isEvent() {}
func (LocationPaid) isEvent()      {}
func (PaymentSucceeded) isEvent()  {}
func (PaymentFailed) isEvent()     {}
func (WentBack) isEvent()          {}

// ==========================
// FLOW STATE
// ==========================

// Flow is the complete wizard state: the current step, the navigation
// history for back-pops, and the data accumulated so far. Transitions are
// pure; Next returns a new Flow and never mutates the receiver.
type Flow struct {
	Step  Step
	State models.WizardState

	history []Step
}

// NewFlow starts at package selection with empty state.
func NewFlow() Flow {
	return Flow{Step: StepPackageSelect}
}

// Done reports whether the subscription has been activated.
func (f Flow) Done() bool {
	return f.Step == StepCompleted
}

func (f Flow) push(next Step) Flow {
	out := f
	out.history = append(append([]Step(nil), f.history...), f.Step)
	out.Step = next
	return out
}

// skipsVerification reports whether the flow bypasses the location and
// verification-fee steps: declining a public profile or declining
// verification goes straight to package payment. Only a public,
// verification-wanting profile books a field visit.
func skipsVerification(p models.ProfileData) bool {
	return !p.PublicProfile || !p.WantsVerified
}

// Next applies one event to the flow. Events arriving at a step where they
// are not legal are rejected and leave the flow unchanged.
func Next(f Flow, ev Event) (Flow, error) {
	switch e := ev.(type) {
	case PackageChosen:
		if f.Step != StepPackageSelect {
			return f, stepError(f.Step, ev)
		}
		out := f.push(StepProfileSetup)
		out.State.SelectedPackage = &e.Package
		out.State.SelectedDuration = e.Duration
		out.State.PromoCode = e.PromoCode
		return out, nil

	case ProfileCompleted:
		if f.Step != StepProfileSetup {
			return f, stepError(f.Step, ev)
		}
		if f.State.SelectedPackage == nil {
			return f, fmt.Errorf("profile completed with no package selected")
		}
		out := f
		out.State.ProfileData = &e.Profile
		if skipsVerification(e.Profile) {
			// No verification visit, so no location and no location fee.
			out = out.push(StepPackagePayment)
			out.State.LocationData = nil
			out.State.PaymentSummary = models.PaymentSummary{
				PackagePrice: f.State.SelectedPackage.Price,
				LocationFee:  0,
				TotalAmount:  f.State.SelectedPackage.Price,
				PromoCode:    f.State.PromoCode,
			}
			return out, nil
		}
		return out.push(StepLocationEntry), nil

	case LocationCompleted:
		if f.Step != StepLocationEntry {
			return f, stepError(f.Step, ev)
		}
		if !e.Location.IsComplete() {
			return f, fmt.Errorf("location entry finished with incomplete hierarchy")
		}
		out := f.push(StepLocationPayment)
		loc := e.Location
		out.State.LocationData = &loc
		var fee float64
		if loc.Fee != nil {
			fee = loc.Fee.Amount
		}
		out.State.PaymentSummary = models.PaymentSummary{
			PackagePrice: f.State.SelectedPackage.Price,
			LocationFee:  fee,
			TotalAmount:  f.State.SelectedPackage.Price + fee,
			PromoCode:    f.State.PromoCode,
		}
		return out, nil

	case LocationPaid:
		if f.Step != StepLocationPayment {
			return f, stepError(f.Step, ev)
		}
		return f.push(StepPackagePayment), nil

	case PaymentSucceeded:
		if f.Step != StepPackagePayment {
			return f, stepError(f.Step, ev)
		}
		out := f.push(StepCompleted)
		out.State.PaymentSummary.TransactionID = e.TransactionID
		return out, nil

	case PaymentFailed:
		if f.Step != StepPackagePayment && f.Step != StepLocationPayment {
			return f, stepError(f.Step, ev)
		}
		// Failed payments restart package selection. Profile and location
		// entries survive so the user does not retype them.
		out := f
		out.Step = StepPackageSelect
		out.history = nil
		out.State.PaymentSummary = models.PaymentSummary{}
		return out, nil

	case WentBack:
		if len(f.history) == 0 || f.Step == StepCompleted {
			return f, stepError(f.Step, ev)
		}
		out := f
		out.Step = f.history[len(f.history)-1]
		out.history = append([]Step(nil), f.history[:len(f.history)-1]...)
		return out, nil
	}
	return f, fmt.Errorf("unknown wizard event %T", ev)
}

func stepError(step Step, ev Event) error {
	return fmt.Errorf("event %T not allowed at step %s", ev, step)
}

// ==========================
// WIZARD WRAPPER
// ==========================

// Wizard carries a Flow plus logging for screens that prefer a mutable
// handle over threading Flow values themselves.
type Wizard struct {
	flow Flow
	log  logger.Logger
}

func New(log logger.Logger) *Wizard {
	return &Wizard{flow: NewFlow(), log: log}
}

// Apply advances the wizard. Illegal events are logged and dropped so a
// double-tap or late callback cannot corrupt the flow.
func (w *Wizard) Apply(ev Event) error {
	next, err := Next(w.flow, ev)
	if err != nil {
		w.log.Warn("wizard event rejected", map[string]interface{}{
			"step":  string(w.flow.Step),
			"event": fmt.Sprintf("%T", ev),
		})
		return err
	}
	w.log.Debug("wizard step changed", map[string]interface{}{
		"from": string(w.flow.Step),
		"to":   string(next.Step),
	})
	w.flow = next
	return nil
}

// Flow returns the current flow state.
func (w *Wizard) Flow() Flow {
	return w.flow
}
