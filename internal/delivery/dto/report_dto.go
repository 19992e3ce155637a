package dto

// ReportResponse aggregates the dataset: appointment counts per doctor and
// visit counts per patient. Identifiers with no appointments appear with a
// zero count.
type ReportResponse struct {
	DoctorWorkload map[string]int `json:"doctor_workload"`
	PatientVisits  map[string]int `json:"patient_visits"`
}
