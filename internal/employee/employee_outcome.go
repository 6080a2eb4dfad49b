package employee

const (
	MsgAdded               = "Employee added successfully."
	MsgDuplicateIDAndEmail = "Employee already exists with the mentioned Id and Email."
	MsgDuplicateID         = "Employee already exists with the mentioned Id."
	MsgDuplicateEmail      = "Employee already exists with the mentioned Email."
	MsgFetchFailed         = "Error fetching data."
	MsgValidationFailure   = "validation failure!"
)

// Outcome is the business result of an add request. Duplicates are outcomes, not errors.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeDuplicateID
	OutcomeDuplicateEmail
	OutcomeDuplicateIDAndEmail
)

func (o Outcome) Message() string {
	switch o {
	case OutcomeDuplicateID:
		return MsgDuplicateID
	case OutcomeDuplicateEmail:
		return MsgDuplicateEmail
	case OutcomeDuplicateIDAndEmail:
		return MsgDuplicateIDAndEmail
	default:
		return MsgAdded
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeDuplicateID:
		return "duplicate_id"
	case OutcomeDuplicateEmail:
		return "duplicate_email"
	case OutcomeDuplicateIDAndEmail:
		return "duplicate_id_and_email"
	default:
		return "added"
	}
}

// duplicateOutcome reports which duplicate message applies, if any.
func duplicateOutcome(idTaken, emailTaken bool) (Outcome, bool) {
	switch {
	case idTaken && emailTaken:
		return OutcomeDuplicateIDAndEmail, true
	case idTaken:
		return OutcomeDuplicateID, true
	case emailTaken:
		return OutcomeDuplicateEmail, true
	}
	return OutcomeAdded, false
}
