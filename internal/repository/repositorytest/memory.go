// Package repositorytest provides in-memory repositories for tests.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthcare-management/internal/domain/entity"
	domainRepo "healthcare-management/internal/domain/repository"
)

// Store holds every table behind a single lock. Its repositories enforce
// the same uniqueness rules as the database schema.
type Store struct {
	mu sync.Mutex

	users    map[uint]entity.User
	patients map[uint]entity.Patient
	doctors  map[uint]entity.Doctor
	mappings map[uint]entity.PatientDoctorMapping
	nextID   uint

	// Err, when set, is returned by every repository call.
	Err error
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]entity.User),
		patients: make(map[uint]entity.Patient),
		doctors:  make(map[uint]entity.Doctor),
		mappings: make(map[uint]entity.PatientDoctorMapping),
	}
}

func (s *Store) Users() domainRepo.UserRepository       { return userRepo{s} }
func (s *Store) Patients() domainRepo.PatientRepository { return patientRepo{s} }
func (s *Store) Doctors() domainRepo.DoctorRepository   { return doctorRepo{s} }
func (s *Store) Mappings() domainRepo.MappingRepository { return mappingRepo{s} }

// Transactor runs fn directly; the fakes have no partial-failure states.
func (s *Store) Transactor() domainRepo.Transactor { return transactor{s} }

// MappingCount returns the number of stored mappings.
func (s *Store) MappingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.mappings)
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

type transactor struct{ s *Store }

func (t transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.s.Err != nil {
		return t.s.Err
	}
	return fn(ctx)
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domainRepo.ErrDuplicateKey
		}
	}
	user.ID = r.s.id()
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type patientRepo struct{ s *Store }

func (r patientRepo) Create(_ context.Context, patient *entity.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[patient.UserID]; !ok {
		return domainRepo.ErrForeignKeyViolation
	}
	patient.ID = r.s.id()
	patient.CreatedAt = time.Now()
	r.s.patients[patient.ID] = *patient
	return nil
}

func (r patientRepo) FindByID(_ context.Context, id uint) (*entity.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	p, ok := r.s.patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r patientRepo) FindAllByUserID(_ context.Context, userID uint) ([]entity.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []entity.Patient
	for _, p := range r.s.patients {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r patientRepo) Update(_ context.Context, patient *entity.Patient, _ []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.patients[patient.ID]; ok {
		r.s.patients[patient.ID] = *patient
	}
	return nil
}

func (r patientRepo) Delete(_ context.Context, id uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	if _, ok := r.s.patients[id]; !ok {
		return 0, nil
	}
	for _, m := range r.s.mappings {
		if m.PatientID == id {
			return 0, domainRepo.ErrForeignKeyViolation
		}
	}
	delete(r.s.patients, id)
	return 1, nil
}

type doctorRepo struct{ s *Store }

func (r doctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[doctor.UserID]; !ok {
		return domainRepo.ErrForeignKeyViolation
	}
	doctor.ID = r.s.id()
	doctor.CreatedAt = time.Now()
	r.s.doctors[doctor.ID] = *doctor
	return nil
}

func (r doctorRepo) FindByID(_ context.Context, id uint) (*entity.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	d, ok := r.s.doctors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r doctorRepo) FindAllByUserID(_ context.Context, userID uint) ([]entity.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []entity.Doctor
	for _, d := range r.s.doctors {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r doctorRepo) Update(_ context.Context, doctor *entity.Doctor, _ []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.doctors[doctor.ID]; ok {
		r.s.doctors[doctor.ID] = *doctor
	}
	return nil
}

func (r doctorRepo) Delete(_ context.Context, id uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	if _, ok := r.s.doctors[id]; !ok {
		return 0, nil
	}
	for _, m := range r.s.mappings {
		if m.DoctorID == id {
			return 0, domainRepo.ErrForeignKeyViolation
		}
	}
	delete(r.s.doctors, id)
	return 1, nil
}

type mappingRepo struct{ s *Store }

func (r mappingRepo) Create(_ context.Context, mapping *entity.PatientDoctorMapping) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.patients[mapping.PatientID]; !ok {
		return domainRepo.ErrForeignKeyViolation
	}
	if _, ok := r.s.doctors[mapping.DoctorID]; !ok {
		return domainRepo.ErrForeignKeyViolation
	}
	for _, m := range r.s.mappings {
		if m.PatientID == mapping.PatientID && m.DoctorID == mapping.DoctorID {
			return domainRepo.ErrDuplicateKey
		}
	}
	mapping.ID = r.s.id()
	mapping.CreatedAt = time.Now()
	r.s.mappings[mapping.ID] = *mapping
	return nil
}

func (r mappingRepo) FindByID(_ context.Context, id uint) (*entity.PatientDoctorMapping, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	m, ok := r.s.mappings[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r mappingRepo) FindAll(_ context.Context) ([]entity.PatientDoctorMapping, error) {
	return r.filter(func(entity.PatientDoctorMapping) bool { return true })
}

func (r mappingRepo) FindByPatientID(_ context.Context, patientID uint) ([]entity.PatientDoctorMapping, error) {
	return r.filter(func(m entity.PatientDoctorMapping) bool { return m.PatientID == patientID })
}

func (r mappingRepo) Delete(_ context.Context, id uint) (int64, error) {
	return r.deleteWhere(func(m entity.PatientDoctorMapping) bool { return m.ID == id })
}

func (r mappingRepo) DeleteByPatientID(_ context.Context, patientID uint) (int64, error) {
	return r.deleteWhere(func(m entity.PatientDoctorMapping) bool { return m.PatientID == patientID })
}

func (r mappingRepo) DeleteByDoctorID(_ context.Context, doctorID uint) (int64, error) {
	return r.deleteWhere(func(m entity.PatientDoctorMapping) bool { return m.DoctorID == doctorID })
}

func (r mappingRepo) filter(keep func(entity.PatientDoctorMapping) bool) ([]entity.PatientDoctorMapping, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []entity.PatientDoctorMapping
	for _, m := range r.s.mappings {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r mappingRepo) deleteWhere(match func(entity.PatientDoctorMapping) bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	var n int64
	for id, m := range r.s.mappings {
		if match(m) {
			delete(r.s.mappings, id)
			n++
		}
	}
	return n, nil
}
