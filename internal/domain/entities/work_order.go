package entities

import "time"

// Reference points at an entity owned by another service (patient, professional,
// laboratory, treatment). Display fields are denormalized for listing and are never
// mutated by this service.
type Reference struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// SubjectRefs groups the ownership links of a work order.
type SubjectRefs struct {
	Patient      Reference  `json:"patient"`
	Professional Reference  `json:"professional"`
	Lab          Reference  `json:"lab"`
	Treatment    *Reference `json:"treatment,omitempty"`
}

// StateTransitionRecord is an immutable history entry.
type StateTransitionRecord[S ~string] struct {
	State      S         `json:"state"`
	OccurredAt time.Time `json:"occurred_at"`
	ActorID    string    `json:"actor_id"`
	Note       string    `json:"note,omitempty"`
}

// Attachment references a file kept in object storage.
type Attachment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UploadedBy  string    `json:"uploaded_by"`
}

// WorkOrder is the status-tracked part shared by lab, prosthesis and fabrication orders.
//
// Invariants kept by the workflow package:
//   - CurrentState equals the state of the last History entry
//   - History is never empty once the order has been created
//   - History is append-only and ordered by OccurredAt
type WorkOrder[S ~string] struct {
	ID                   string                     `json:"id"`
	Subject              SubjectRefs                `json:"subject"`
	CurrentState         S                          `json:"current_state"`
	History              []StateTransitionRecord[S] `json:"history"`
	Attachments          []Attachment               `json:"attachments"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
	ExpectedCompletionAt *time.Time                 `json:"expected_completion_at,omitempty"`
	ActualCompletionAt   *time.Time                 `json:"actual_completion_at,omitempty"`
	Version              int64                      `json:"version"`
}

// Base gives generic code access to the embedded work order.
func (w *WorkOrder[S]) Base() *WorkOrder[S] { return w }

func (w *WorkOrder[S]) RecordID() string { return w.ID }

func (w *WorkOrder[S]) RecordVersion() int64 { return w.Version }

func (w *WorkOrder[S]) SetRecordVersion(v int64) { w.Version = v }

func (w *WorkOrder[S]) CreatedTime() time.Time { return w.CreatedAt }

// IndexKeys exposes the attributes used by secondary indexes and list filters.
func (w *WorkOrder[S]) IndexKeys() map[string]string {
	return map[string]string{
		"patient_id": w.Subject.Patient.ID,
		"lab_id":     w.Subject.Lab.ID,
	}
}

// LastTransition returns the most recent history entry.
func (w *WorkOrder[S]) LastTransition() (StateTransitionRecord[S], bool) {
	if len(w.History) == 0 {
		return StateTransitionRecord[S]{}, false
	}
	return w.History[len(w.History)-1], true
}

// FindAttachment returns the index of the attachment or -1.
func (w *WorkOrder[S]) FindAttachment(id string) int {
	for i, a := range w.Attachments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// WorkOrderFilter narrows list queries. Empty fields are ignored.
type WorkOrderFilter struct {
	PatientID string
	LabID     string
	Status    string
	Page      int
	Limit     int
}
