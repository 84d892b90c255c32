package order

import (
	"fmt"

	"packnow/internal/pkg/errs"
)

// Status represents the lifecycle state of a packaging order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> PackerAssigned ──> OnTheWay ──> Packed ──> Completed
//	   │              │                │           │
//	   └──────────────┴────────────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are final states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a packer.
	Created

	// PackerAssigned indicates the order has been matched with a packer
	// and the packer's inventory has been reserved.
	PackerAssigned

	// OnTheWay indicates the assigned packer is traveling to the pickup location.
	OnTheWay

	// Packed indicates the item has been physically packaged.
	Packed

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before fulfillment.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Created:        "Created",
		PackerAssigned: "PackerAssigned",
		OnTheWay:       "OnTheWay",
		Packed:         "Packed",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "Created",
		PackerAssigned: "PackerAssigned",
		OnTheWay:       "OnTheWay",
		Packed:         "Packed",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is a terminal lifecycle state.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAssign checks if the status allows packer assignment without
// performing the transition. Only freshly created orders can be assigned.
func (s Status) ValidateAssign() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign a packer", s.String()),
		)
	}
	return nil
}

// ValidateCanHavePacker validates the consistency between order status and
// packer assignment: a Created or Cancelled order may lack a packer, while
// every post-assignment status requires one.
func (s Status) ValidateCanHavePacker(packer bool) error {
	if packer && s == Created {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a packer", s.String()),
		)
	}

	if !packer && (s == PackerAssigned || s == OnTheWay || s == Packed || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no packer", s.String()),
		)
	}

	return nil
}

// AssignPacker transitions the status to PackerAssigned.
// Valid only from Created.
func (s Status) AssignPacker() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return PackerAssigned, nil
}

// MarkOnTheWay transitions the status to OnTheWay.
// Valid only from PackerAssigned.
func (s Status) MarkOnTheWay() (Status, error) {
	if s != PackerAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to mark on the way", s.String()),
		)
	}

	return OnTheWay, nil
}

// MarkPacked transitions the status to Packed.
// Valid only from OnTheWay.
func (s Status) MarkPacked() (Status, error) {
	if s != OnTheWay {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to mark packed", s.String()),
		)
	}

	return Packed, nil
}

// Complete transitions the status to Completed.
// Valid only from Packed.
func (s Status) Complete() (Status, error) {
	if s != Packed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-final status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsFinal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
