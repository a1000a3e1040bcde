package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrRowNotEditing is returned when fees are written or a commit is
	// attempted outside the editing stage.
	ErrRowNotEditing = errors.New("row is not in editing stage")

	// ErrInvalidFees is returned when a commit is refused because the
	// entered fee values fail validation. The row keeps its error message.
	ErrInvalidFees = errors.New("enter valid fee values")

	// ErrClientRequired is returned when a client record is missing or has
	// empty required fields.
	ErrClientRequired = errors.New("client name and address are required")
)

// ClientRecord holds the client details captured once per quotation session.
type ClientRecord struct {
	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress"`
}

// Session is one quotation composition workspace: per-row edit states, the
// selection registry, and the client record. All access goes through the
// mutex because HTTP handlers run concurrently.
type Session struct {
	mu       sync.Mutex
	rows     map[string]*RowState
	registry Registry
	client   *ClientRecord
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{rows: make(map[string]*RowState)}
}

func rowKey(serviceID, subserviceName string) string {
	return serviceID + "/" + subserviceName
}

func (s *Session) row(serviceID, subserviceName string) *RowState {
	key := rowKey(serviceID, subserviceName)
	st, ok := s.rows[key]
	if !ok {
		st = newRowState()
		s.rows[key] = st
	}
	return st
}

// Row returns a copy of the current state for the given row.
func (s *Session) Row(serviceID, subserviceName string) RowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.row(serviceID, subserviceName)
}

// StartEdit moves the row into the editing stage, clearing any error.
func (s *Session) StartEdit(serviceID, subserviceName string) RowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.row(serviceID, subserviceName)
	st.startEdit()
	return *st
}

// SetFees records new fee values on an editing row, clearing any error.
func (s *Session) SetFees(serviceID, subserviceName string, professionalFee, reimbursement float64) (RowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.row(serviceID, subserviceName)
	if err := st.setFees(professionalFee, reimbursement); err != nil {
		return *st, err
	}
	return *st, nil
}

// Confirm validates the row's fees and, on success, upserts the selection
// into the registry and moves the row to confirmed. On validation failure
// the row stays in editing with an error set and the registry is untouched.
func (s *Session) Confirm(svc Service, sub Subservice) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.row(svc.ID, sub.Name)
	if st.Stage != RowEditing {
		return Entry{}, ErrRowNotEditing
	}
	if !st.validFees() {
		st.Error = ErrInvalidFees.Error()
		return Entry{}, ErrInvalidFees
	}

	entry := s.registry.Upsert(svc, sub, st.ProfessionalFee, st.Reimbursement)
	st.Stage = RowConfirmed
	st.Error = ""
	return entry, nil
}

// Remove deletes the selection at the given index and resets the matching
// row back to idle, keeping its entered fee values.
func (s *Session) Remove(index int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.registry.RemoveAt(index)
	if err != nil {
		return Entry{}, err
	}
	if st, ok := s.rows[rowKey(removed.ServiceID, removed.Subservice)]; ok {
		st.Stage = RowIdle
		st.Error = ""
	}
	return removed, nil
}

// Reset empties the registry, drops all row states and forgets the client
// record, starting a fresh quotation.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Clear()
	s.rows = make(map[string]*RowState)
	s.client = nil
}

// SetClient stores the client record after checking both required fields.
func (s *Session) SetClient(c ClientRecord) error {
	if c.ClientName == "" || c.ClientAddress == "" {
		return ErrClientRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = &c
	return nil
}

// Client returns the stored client record, if any.
func (s *Session) Client() (ClientRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return ClientRecord{}, false
	}
	return *s.client, true
}

// Entries returns a snapshot of the full selection registry.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Entries()
}

// EntriesForCategory returns a snapshot of the selections whose service
// matches the category key. Synthesis works off this snapshot so that
// concurrent edits cannot change a document mid-generation.
func (s *Session) EntriesForCategory(key string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.ForCategory(key)
}

// IsSelected reports whether the pair is currently confirmed.
func (s *Session) IsSelected(serviceID, subserviceName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.IsSelected(serviceID, subserviceName)
}

// Rows returns a copy of all touched row states keyed by "serviceId/name".
func (s *Session) Rows() map[string]RowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]RowState, len(s.rows))
	for k, st := range s.rows {
		out[k] = *st
	}
	return out
}

// SessionStore maps opaque tokens to live sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns its token.
func (st *SessionStore) Create() (string, *Session) {
	token := uuid.NewString()
	sess := NewSession()
	st.mu.Lock()
	st.sessions[token] = sess
	st.mu.Unlock()
	return token, sess
}

// Get returns the session for a token.
func (st *SessionStore) Get(token string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[token]
	return sess, ok
}
