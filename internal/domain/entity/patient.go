package entity

import "time"

// Patient represents a registered patient together with the clinical
// records owned by them: medical history entries and prescriptions,
// both append-only and kept in insertion order.
type Patient struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	Address        string         `json:"address,omitempty"`
	Contact        string         `json:"contact,omitempty"`
	RegisteredAt   time.Time      `json:"registered_at"`
	MedicalHistory []string       `json:"medical_history,omitempty"`
	Prescriptions  []Prescription `json:"prescriptions,omitempty"`
}

// Clone returns a copy whose history and prescription slices do not share
// backing arrays with the receiver.
func (p Patient) Clone() Patient {
	out := p
	if p.MedicalHistory != nil {
		out.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	}
	if p.Prescriptions != nil {
		out.Prescriptions = append([]Prescription(nil), p.Prescriptions...)
	}
	return out
}

// AddMedicalHistory appends one history entry.
func (p *Patient) AddMedicalHistory(entry string) {
	p.MedicalHistory = append(p.MedicalHistory, entry)
}

// AddPrescription appends a prescription to the patient's record.
func (p *Patient) AddPrescription(pr Prescription) {
	p.Prescriptions = append(p.Prescriptions, pr)
}
