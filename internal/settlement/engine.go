package settlement

import (
	"math"
	"time"
)

// Status classifies an applicant's settlement outcome.
type Status string

const (
	// StatusSuccess место закреплено, событие состоится;
	StatusSuccess Status = "success"
	// StatusOverflow место не досталось, полный возврат;
	StatusOverflow Status = "overflow"
	// StatusFailed событие отменено или сбор не достиг цели, полный возврат.
	StatusFailed Status = "failed"
)

// OverflowReason explains why an overflow applicant lost their seat.
type OverflowReason string

const (
	// ReasonLower paid strictly less than the threshold applicant.
	ReasonLower OverflowReason = "lower"
	// ReasonLate paid the same amount but completed payment later.
	ReasonLate OverflowReason = "late"
)

// Economics is the read-only event configuration consumed by Settle. A zero
// SeatLimit means unlimited; a zero PricePerSeat means derive it from the
// total price.
type Economics struct {
	PriceTotal   int64
	SeatLimit    int
	PricePerSeat int64
	IsCancelled  bool
}

// PersonalResult is the settlement outcome for one applicant. Threshold
// fields are populated only for overflow results, for audit purposes.
type PersonalResult struct {
	ApplicantCode     string         `json:"applicantCode"`
	ApplicantLogin    string         `json:"applicantLogin,omitempty"`
	Status            Status         `json:"status"`
	TotalPaid         int64          `json:"totalPaid"`
	ExpectedPayment   int64          `json:"expectedPayment,omitempty"`
	ExtraContribution int64          `json:"extraContribution,omitempty"`
	Deficit           int64          `json:"deficit,omitempty"`
	Share             float64        `json:"share,omitempty"`
	RefundFromSurplus int64          `json:"refundFromSurplus,omitempty"`
	RefundTotal       int64          `json:"refundTotal"`
	PricePerSeat      int64          `json:"pricePerSeat"`
	SurplusAvailable  int64          `json:"surplusAvailable,omitempty"`
	OverflowTotal     int64          `json:"overflowTotal,omitempty"`
	Reason            OverflowReason `json:"reason,omitempty"`
	ThresholdAmount   *int64         `json:"thresholdAmount,omitempty"`
	ThresholdTime     *time.Time     `json:"thresholdTime,omitempty"`
	SelectedTime      *time.Time     `json:"selectedTime,omitempty"`
}

// Result is the full settlement of one event.
type Result struct {
	Collected              int64
	Deficit                int64
	Surplus                int64
	OverflowTotal          int64
	TotalExtras            int64
	SurplusForDistribution int64
	PricePerSeat           int64
	Personal               []PersonalResult
}

// Settle computes the settlement for an event given its economics and the
// ranked applicant list produced by Aggregate. It is a pure function:
// identical inputs yield identical output.
//
// Per-applicant refundFromSurplus values are rounded independently, so their
// sum is not guaranteed to equal the distributable surplus exactly. The
// residue is neither tracked nor redistributed.
func Settle(eco Economics, applicants []Applicant) Result {
	var collected int64
	for i := range applicants {
		collected += applicants[i].PaidAmount
	}

	deficit := max64(0, eco.PriceTotal-collected)
	surplus := max64(0, collected-eco.PriceTotal)

	limitIndex := len(applicants)
	if eco.SeatLimit > 0 && eco.SeatLimit < limitIndex {
		limitIndex = eco.SeatLimit
	}

	withinLimit := applicants[:limitIndex]
	overflow := applicants[limitIndex:]

	var overflowTotal int64
	for i := range overflow {
		overflowTotal += overflow[i].PaidAmount
	}

	pricePerSeat := effectivePricePerSeat(eco, limitIndex, len(applicants))

	// Money contributed by overflow applicants is refunded in full and is
	// excluded from the pool distributed to within-limit overpayers.
	surplusForDistribution := max64(0, surplus-overflowTotal)

	extras := make([]int64, limitIndex)
	deficits := make([]int64, limitIndex)
	var totalExtras int64
	for i := range withinLimit {
		expected := int64(withinLimit[i].Seats) * pricePerSeat
		extras[i] = max64(0, withinLimit[i].PaidAmount-expected)
		deficits[i] = max64(0, expected-withinLimit[i].PaidAmount)
		totalExtras += extras[i]
	}

	personal := make([]PersonalResult, len(applicants))
	for i := range applicants {
		applicant := &applicants[i]

		// Cancellation or a global deficit overrides everything: the event
		// does not proceed and everyone is refunded in full.
		if eco.IsCancelled || deficit > 0 {
			personal[i] = PersonalResult{
				ApplicantCode:  applicant.Code,
				ApplicantLogin: applicant.Login,
				Status:         StatusFailed,
				TotalPaid:      applicant.PaidAmount,
				RefundTotal:    applicant.PaidAmount,
				PricePerSeat:   pricePerSeat,
				Deficit:        deficit,
			}
			continue
		}

		if i >= limitIndex {
			personal[i] = overflowResult(applicant, applicants, limitIndex, pricePerSeat)
			continue
		}

		personal[i] = successResult(applicant, extras[i], deficits[i], pricePerSeat,
			surplusForDistribution, totalExtras, overflowTotal, limitIndex)
	}

	return Result{
		Collected:              collected,
		Deficit:                deficit,
		Surplus:                surplus,
		OverflowTotal:          overflowTotal,
		TotalExtras:            totalExtras,
		SurplusForDistribution: surplusForDistribution,
		PricePerSeat:           pricePerSeat,
		Personal:               personal,
	}
}

func effectivePricePerSeat(eco Economics, limitIndex, applicantCount int) int64 {
	if eco.PricePerSeat > 0 {
		return eco.PricePerSeat
	}
	if limitIndex > 0 {
		return roundDiv(eco.PriceTotal, int64(limitIndex))
	}
	if applicantCount > 0 {
		return roundDiv(eco.PriceTotal, int64(applicantCount))
	}
	return eco.PriceTotal
}

func overflowResult(applicant *Applicant, ranked []Applicant, limitIndex int, pricePerSeat int64) PersonalResult {
	result := PersonalResult{
		ApplicantCode:  applicant.Code,
		ApplicantLogin: applicant.Login,
		Status:         StatusOverflow,
		TotalPaid:      applicant.PaidAmount,
		RefundTotal:    applicant.PaidAmount,
		PricePerSeat:   pricePerSeat,
		Reason:         ReasonLower,
	}

	if selected, ok := applicant.LastPaymentAt(); ok {
		t := selected
		result.SelectedTime = &t
	}

	if limitIndex == 0 {
		return result
	}

	threshold := &ranked[limitIndex-1]
	amount := threshold.PaidAmount
	result.ThresholdAmount = &amount
	thresholdTime, thresholdOK := threshold.LastPaymentAt()
	if thresholdOK {
		t := thresholdTime
		result.ThresholdTime = &t
	}

	// Same amount as the seat-holding threshold applicant but a later final
	// payment: the seat was lost purely on timing.
	if amount == applicant.PaidAmount && thresholdOK && result.SelectedTime != nil &&
		result.SelectedTime.After(thresholdTime) {
		result.Reason = ReasonLate
	}

	return result
}

func successResult(applicant *Applicant, extra, applicantDeficit, pricePerSeat,
	surplusForDistribution, totalExtras, overflowTotal int64, countWithinLimit int) PersonalResult {

	expected := int64(applicant.Seats) * pricePerSeat

	var share float64
	if surplusForDistribution > 0 {
		switch {
		case countWithinLimit == 1:
			share = 1
		case totalExtras > 0:
			share = float64(extra) / float64(totalExtras)
		default:
			share = 1 / float64(countWithinLimit)
		}
	}

	refundFromSurplus := int64(math.Round(float64(surplusForDistribution) * share))

	var refundTotal int64
	if extra > 0 {
		if surplusForDistribution >= totalExtras && totalExtras > 0 {
			// The pool covers all extras exactly: refund the extra itself,
			// avoiding rounding loss.
			refundTotal = extra
		} else {
			refundTotal = min64(extra, refundFromSurplus)
		}
	} else {
		refundTotal = refundFromSurplus
	}

	return PersonalResult{
		ApplicantCode:     applicant.Code,
		ApplicantLogin:    applicant.Login,
		Status:            StatusSuccess,
		TotalPaid:         applicant.PaidAmount,
		ExpectedPayment:   expected,
		ExtraContribution: extra,
		Deficit:           applicantDeficit,
		Share:             share,
		RefundFromSurplus: refundFromSurplus,
		RefundTotal:       refundTotal,
		PricePerSeat:      pricePerSeat,
		SurplusAvailable:  surplusForDistribution,
		OverflowTotal:     overflowTotal,
	}
}

func roundDiv(total, n int64) int64 {
	return int64(math.Round(float64(total) / float64(n)))
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
