package professional

// ComplianceRecord is the per-trade compliance verdict for a professional.
// It is read-only input here: an external collaborator owns and recomputes
// it on document and identity events.
type ComplianceRecord struct {
	ProID     string
	Category  string
	Compliant bool
	Reason    string
}
