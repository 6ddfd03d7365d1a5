package contact

// Submission is one persisted visitor contact-form entry. Entries are never
// mutated in place; Read exists for the dashboard but no operation flips it.
type Submission struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// Fields is the visitor-supplied part of a submission.
type Fields struct {
	Fullname string
	Email    string
	Phone    string
	Message  string
}
