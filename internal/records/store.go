// Package records holds the in-memory clinical record store and the
// scheduling and reporting operations built on top of it. The store is the
// single owner of the three collections; every mutation runs under its write
// lock so that readers always observe a consistent snapshot.
package records

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

var (
	ErrDuplicatePatient    = errors.New("a patient with this ID is already registered")
	ErrDuplicateDoctor     = errors.New("a doctor with this ID is already registered")
	ErrUnknownAppointment  = errors.New("appointment not found")
	ErrUnknownPrescription = errors.New("prescription not found")
)

// Store keeps patients, doctors and appointments in memory, each keyed by
// identifier. Prescriptions live inside their owning patient. The zero value
// is not usable; construct with NewStore.
type Store struct {
	mu           sync.RWMutex
	patients     map[string]*entity.Patient
	doctors      map[string]*entity.Doctor
	appointments map[string]*entity.Appointment

	// Next candidate appointment ID, guarded by mu.
	nextAppointmentID int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		patients:          make(map[string]*entity.Patient),
		doctors:           make(map[string]*entity.Doctor),
		appointments:      make(map[string]*entity.Appointment),
		nextAppointmentID: 1,
		now:               time.Now,
	}
}

// SetClock overrides the time source used by scheduling checks and temporal
// queries. Used by tests to pin "now".
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// RegisterPatient adds a new patient. The registration timestamp is stamped
// here unless the caller already set one.
func (s *Store) RegisterPatient(p entity.Patient) (entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[p.ID]; ok {
		return entity.Patient{}, ErrDuplicatePatient
	}
	if p.RegisteredAt.IsZero() {
		p.RegisteredAt = s.now()
	}
	// Clone so the stored record never aliases caller-owned slices.
	p = p.Clone()
	s.patients[p.ID] = &p
	return p.Clone(), nil
}

// RegisterDoctor adds a new doctor.
func (s *Store) RegisterDoctor(d entity.Doctor) (entity.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[d.ID]; ok {
		return entity.Doctor{}, ErrDuplicateDoctor
	}
	if d.RegisteredAt.IsZero() {
		d.RegisteredAt = s.now()
	}
	s.doctors[d.ID] = &d
	return d, nil
}

// FindPatient returns a copy of the patient, if registered.
func (s *Store) FindPatient(id string) (entity.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return entity.Patient{}, false
	}
	return p.Clone(), true
}

// FindDoctor returns a copy of the doctor, if registered.
func (s *Store) FindDoctor(id string) (entity.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return entity.Doctor{}, false
	}
	return *d, true
}

// FindAppointment returns a copy of the appointment, if present.
func (s *Store) FindAppointment(id string) (entity.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return entity.Appointment{}, false
	}
	return *a, true
}

// Patients returns all registered patients ordered by ID.
func (s *Store) Patients() []entity.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Doctors returns all registered doctors ordered by ID.
func (s *Store) Doctors() []entity.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddMedicalHistory appends one history entry to an existing patient.
func (s *Store) AddMedicalHistory(patientID, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[patientID]
	if !ok {
		return ErrUnknownPatient
	}
	p.AddMedicalHistory(entry)
	return nil
}

// AddPrescription appends a prescription to an existing patient's record.
// The prescription's PatientID is forced to the owning patient.
func (s *Store) AddPrescription(patientID string, pr entity.Prescription) (entity.Prescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[patientID]
	if !ok {
		return entity.Prescription{}, ErrUnknownPatient
	}
	pr.PatientID = patientID
	p.AddPrescription(pr)
	return pr, nil
}

// SetPrescriptionRefill sets or clears the refill flag on one of the
// patient's prescriptions.
func (s *Store) SetPrescriptionRefill(patientID, prescriptionID string, needed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[patientID]
	if !ok {
		return ErrUnknownPatient
	}
	for i := range p.Prescriptions {
		if p.Prescriptions[i].ID == prescriptionID {
			p.Prescriptions[i].RefillNeeded = needed
			return nil
		}
	}
	return ErrUnknownPrescription
}

// MarkAppointmentCompleted transitions an appointment into its terminal
// completed state and returns the updated record.
func (s *Store) MarkAppointmentCompleted(id string) (entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return entity.Appointment{}, ErrUnknownAppointment
	}
	a.MarkCompleted()
	return *a, nil
}

// Archive is a wholesale copy of the three collections, suitable for
// serialization by the persistence layer.
type Archive struct {
	Patients     map[string]entity.Patient     `json:"patients"`
	Doctors      map[string]entity.Doctor      `json:"doctors"`
	Appointments map[string]entity.Appointment `json:"appointments"`
}

// Export copies the three collections out of the store. The archive is a
// deep copy: later store writes never reach an already exported snapshot.
func (s *Store) Export() Archive {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := Archive{
		Patients:     make(map[string]entity.Patient, len(s.patients)),
		Doctors:      make(map[string]entity.Doctor, len(s.doctors)),
		Appointments: make(map[string]entity.Appointment, len(s.appointments)),
	}
	for id, p := range s.patients {
		a.Patients[id] = p.Clone()
	}
	for id, d := range s.doctors {
		a.Doctors[id] = *d
	}
	for id, appt := range s.appointments {
		a.Appointments[id] = *appt
	}
	return a
}

// Import replaces the collections wholesale with a previously exported
// archive; patient records are cloned so the store never aliases the
// caller's archive. The appointment ID counter resumes above the highest
// numeric key so restored stores never re-issue an identifier. Nil maps
// restore to empty collections.
func (s *Store) Import(a Archive) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients = make(map[string]*entity.Patient, len(a.Patients))
	for id, p := range a.Patients {
		cp := p.Clone()
		s.patients[id] = &cp
	}
	s.doctors = make(map[string]*entity.Doctor, len(a.Doctors))
	for id, d := range a.Doctors {
		s.doctors[id] = &d
	}
	s.appointments = make(map[string]*entity.Appointment, len(a.Appointments))
	s.nextAppointmentID = 1
	for id, appt := range a.Appointments {
		s.appointments[id] = &appt
		if n, err := strconv.Atoi(id); err == nil && n >= s.nextAppointmentID {
			s.nextAppointmentID = n + 1
		}
	}
}
