package records

import (
	"sort"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

// Query operations are pure reads over the store plus the clock. None of
// them mutate state, and unknown identifiers yield empty results rather than
// errors; existence checks are the caller's responsibility.

// UpcomingAppointments returns all appointments scheduled strictly after now,
// ordered by datetime.
func (s *Store) UpcomingAppointments() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []entity.Appointment
	for _, a := range s.appointments {
		if a.IsUpcomingAt(now) {
			out = append(out, *a)
		}
	}
	sortByDatetime(out)
	return out
}

// OverdueAppointments returns all appointments whose scheduled time has
// passed without being marked completed, ordered by datetime.
func (s *Store) OverdueAppointments() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []entity.Appointment
	for _, a := range s.appointments {
		if a.IsOverdueAt(now) {
			out = append(out, *a)
		}
	}
	sortByDatetime(out)
	return out
}

// AppointmentsForPatient returns every appointment referencing the patient.
func (s *Store) AppointmentsForPatient(patientID string) []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Appointment
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	sortByDatetime(out)
	return out
}

// AppointmentsForDoctor returns every appointment referencing the doctor.
func (s *Store) AppointmentsForDoctor(doctorID string) []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Appointment
	for _, a := range s.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	sortByDatetime(out)
	return out
}

// PrescriptionsForPatient returns the patient's prescriptions in insertion
// order, or an empty slice if the patient is unknown.
func (s *Store) PrescriptionsForPatient(patientID string) []entity.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[patientID]
	if !ok {
		return nil
	}
	out := make([]entity.Prescription, len(p.Prescriptions))
	copy(out, p.Prescriptions)
	return out
}

// ExpiredPrescriptions returns, across all patients, every prescription whose
// end date is strictly in the past.
func (s *Store) ExpiredPrescriptions() []entity.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []entity.Prescription
	for _, id := range s.sortedPatientIDs() {
		for _, pr := range s.patients[id].Prescriptions {
			if pr.IsExpiredAt(now) {
				out = append(out, pr)
			}
		}
	}
	return out
}

// RefillDuePrescriptions returns every prescription flagged as needing a
// refill, independent of its date range.
func (s *Store) RefillDuePrescriptions() []entity.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Prescription
	for _, id := range s.sortedPatientIDs() {
		for _, pr := range s.patients[id].Prescriptions {
			if pr.RefillNeeded {
				out = append(out, pr)
			}
		}
	}
	return out
}

// DoctorWorkloadSummary counts appointments per doctor in one pass over the
// appointment collection. Doctors without appointments appear with a zero
// count.
func (s *Store) DoctorWorkloadSummary() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.doctors))
	for id := range s.doctors {
		counts[id] = 0
	}
	for _, a := range s.appointments {
		counts[a.DoctorID]++
	}
	return counts
}

// PatientVisitSummary counts appointments per patient, fresh per patient.
func (s *Store) PatientVisitSummary() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(s.patients))
	for id := range s.patients {
		counts[id] = 0
	}
	for _, a := range s.appointments {
		counts[a.PatientID]++
	}
	return counts
}

func (s *Store) sortedPatientIDs() []string {
	ids := make([]string, 0, len(s.patients))
	for id := range s.patients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortByDatetime(appts []entity.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		if appts[i].Datetime.Equal(appts[j].Datetime) {
			return appts[i].ID < appts[j].ID
		}
		return appts[i].Datetime.Before(appts[j].Datetime)
	})
}
