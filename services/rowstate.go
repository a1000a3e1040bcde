package services

// RowStage is the edit stage of a single catalog row. A row starts in
// RowIdle, enters RowEditing on the first edit, and then cycles
// editing -> confirmed -> editing for every subsequent change.
type RowStage string

const (
	RowIdle      RowStage = "idle"
	RowEditing   RowStage = "editing"
	RowConfirmed RowStage = "confirmed"
)

// RowState carries the per-row edit stage, the entered fee values and the
// current validation error. Fee values persist across stage transitions;
// they are only reset when the whole session is reset.
type RowState struct {
	Stage           RowStage `json:"stage"`
	ProfessionalFee float64  `json:"professionalFee"`
	Reimbursement   float64  `json:"reimbursement"`
	Error           string   `json:"error,omitempty"`
}

// newRowState returns the initial state for an untouched row.
func newRowState() *RowState {
	return &RowState{Stage: RowIdle}
}

// startEdit moves the row into the editing stage and clears any error.
// Valid from idle, confirmed, and (as a no-op transition) editing.
func (s *RowState) startEdit() {
	s.Stage = RowEditing
	s.Error = ""
}

// setFees updates the entered fee values and clears any error. Fees are
// writable only while editing.
func (s *RowState) setFees(professionalFee, reimbursement float64) error {
	if s.Stage != RowEditing {
		return ErrRowNotEditing
	}
	s.ProfessionalFee = professionalFee
	s.Reimbursement = reimbursement
	s.Error = ""
	return nil
}

// validFees reports whether the entered fees satisfy the commit rules:
// the professional fee must be positive and the reimbursement non-negative.
func (s *RowState) validFees() bool {
	return s.ProfessionalFee > 0 && s.Reimbursement >= 0
}
