package models

// FormState is the in-progress book-creation form.
type FormState struct {
	ParentName  string      `json:"parentName,omitempty"`
	ParentEmail string      `json:"parentEmail,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	ChildName   string      `json:"childName,omitempty"`
	ChildAge    int         `json:"childAge,omitempty"`
	ChildGender string      `json:"childGender,omitempty"`
	BookTitle   string      `json:"bookTitle,omitempty"`
	Dedication  string      `json:"dedication,omitempty"`
	Adventures  []Adventure `json:"adventures,omitempty"`
}

// DraftStatus is the only status a persisted draft can have.
const DraftStatus = "draft"

// FormDraft is a saved, incomplete form. The primary slot holds at most one
// current draft; the all-drafts list may hold several named snapshots keyed
// by a composite id (child name + parent email + creation time).
type FormDraft struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title,omitempty"` // starts with the child's name
	FormData    FormState `json:"formData"`
	CurrentStep int       `json:"currentStep"`
	SavedAt     string    `json:"savedAt"`
	Status      string    `json:"status"`
}
