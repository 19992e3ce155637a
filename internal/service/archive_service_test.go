package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeArchiveRepository keeps blobs in a map so the service can be tested
// without a database connection.
type fakeArchiveRepository struct {
	blobs     map[string]*entity.ArchiveBlob
	saveCalls int
	saveErr   error
}

func newFakeArchiveRepository() *fakeArchiveRepository {
	return &fakeArchiveRepository{blobs: make(map[string]*entity.ArchiveBlob)}
}

func (r *fakeArchiveRepository) SaveAll(_ *gorm.DB, blobs []*entity.ArchiveBlob) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, blob := range blobs {
		saved := *blob
		r.blobs[blob.Name] = &saved
	}
	return nil
}

func (r *fakeArchiveRepository) FindByName(_ *gorm.DB, name string) (*entity.ArchiveBlob, error) {
	blob, ok := r.blobs[name]
	if !ok {
		return nil, nil
	}
	return blob, nil
}

func newTestArchiveService(t *testing.T) (*ArchiveService, *records.Store, *fakeArchiveRepository, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := records.NewStore()
	repo := newFakeArchiveRepository()
	svc := NewArchiveService(nil, redisClient, log, store, repo, time.Hour)
	return svc, store, repo, redisClient
}

func seedStore(t *testing.T, store *records.Store) entity.Appointment {
	t.Helper()

	_, err := store.RegisterPatient(entity.Patient{ID: "P1", Name: "Alice Moore"})
	require.NoError(t, err)
	_, err = store.RegisterDoctor(entity.Doctor{ID: "D1", Name: "Dr. Reyes"})
	require.NoError(t, err)
	appt, err := store.ScheduleAppointment("P1", "D1", "checkup", "2099-01-01 09:00")
	require.NoError(t, err)
	return appt
}

func TestSaveSnapshot_WritesAllCollections(t *testing.T) {
	svc, store, repo, redisClient := newTestArchiveService(t)
	seedStore(t, store)

	require.NoError(t, svc.SaveSnapshot(context.Background()))

	for _, name := range archiveCollections {
		blob, ok := repo.blobs[name]
		require.True(t, ok, "missing database blob %s", name)
		assert.NotEmpty(t, blob.Data)
		assert.False(t, blob.SavedAt.IsZero())

		data, err := redisClient.Get(context.Background(), redisArchiveKeyPrefix+name).Bytes()
		require.NoError(t, err)
		assert.Equal(t, blob.Data, data)
	}
}

func TestSaveSnapshot_WritesOneGenerationPerCall(t *testing.T) {
	svc, store, repo, _ := newTestArchiveService(t)
	seedStore(t, store)

	require.NoError(t, svc.SaveSnapshot(context.Background()))
	assert.Equal(t, 1, repo.saveCalls)
	assert.Len(t, repo.blobs, len(archiveCollections))
}

func TestSaveSnapshot_SurfacesDatabaseError(t *testing.T) {
	svc, store, repo, _ := newTestArchiveService(t)
	seedStore(t, store)

	repo.saveErr = errors.New("connection reset")
	err := svc.SaveSnapshot(context.Background())
	require.Error(t, err)
	assert.Empty(t, repo.blobs)
}

func TestSaveSnapshot_UnaffectedByConcurrentRefillUpdate(t *testing.T) {
	svc, store, repo, _ := newTestArchiveService(t)
	seedStore(t, store)
	_, err := store.AddPrescription("P1", entity.Prescription{
		ID: "rx-1", DoctorID: "D1", MedicationName: "amoxicillin", Dosage: "500mg",
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, store.SetPrescriptionRefill("P1", "rx-1", true))
	}()
	require.NoError(t, svc.SaveSnapshot(context.Background()))
	wg.Wait()

	// The saved blob decodes to a coherent patient record either way.
	var patients map[string]entity.Patient
	require.NoError(t, json.Unmarshal(repo.blobs[entity.ArchivePatients].Data, &patients))
	require.Len(t, patients["P1"].Prescriptions, 1)
	assert.Equal(t, "amoxicillin", patients["P1"].Prescriptions[0].MedicationName)
}

func TestRestoreOnStartup_FreshWhenNoSnapshotExists(t *testing.T) {
	svc, store, _, _ := newTestArchiveService(t)

	require.NoError(t, svc.RestoreOnStartup(context.Background()))
	assert.Empty(t, store.Patients())
	assert.Empty(t, store.Doctors())
}

func TestRestoreOnStartup_FromRedisMirror(t *testing.T) {
	svc, store, repo, redisClient := newTestArchiveService(t)
	appt := seedStore(t, store)
	require.NoError(t, svc.SaveSnapshot(context.Background()))

	// Drop the database copy so a successful restore proves Redis was used.
	repo.blobs = make(map[string]*entity.ArchiveBlob)

	restored := records.NewStore()
	restoredSvc := NewArchiveService(nil, redisClient, svc.log, restored, repo, time.Hour)
	require.NoError(t, restoredSvc.RestoreOnStartup(context.Background()))

	got, ok := restored.FindAppointment(appt.ID)
	require.True(t, ok)
	assert.Equal(t, appt, got)
}

func TestRestoreOnStartup_FallsBackToDatabase(t *testing.T) {
	svc, store, repo, redisClient := newTestArchiveService(t)
	appt := seedStore(t, store)
	require.NoError(t, svc.SaveSnapshot(context.Background()))

	// Wipe the Redis mirror; the database copy must carry the restore.
	require.NoError(t, redisClient.FlushAll(context.Background()).Err())

	restored := records.NewStore()
	restoredSvc := NewArchiveService(nil, redisClient, svc.log, restored, repo, time.Hour)
	require.NoError(t, restoredSvc.RestoreOnStartup(context.Background()))

	got, ok := restored.FindAppointment(appt.ID)
	require.True(t, ok)
	assert.Equal(t, appt, got)

	patient, ok := restored.FindPatient("P1")
	require.True(t, ok)
	assert.Equal(t, "Alice Moore", patient.Name)
}

func TestRestoreOnStartup_PartialRedisMirrorIsNotTrusted(t *testing.T) {
	svc, store, _, redisClient := newTestArchiveService(t)
	appt := seedStore(t, store)
	require.NoError(t, svc.SaveSnapshot(context.Background()))

	// Delete one mirrored key; restore must fall back to the database.
	require.NoError(t, redisClient.Del(context.Background(), redisArchiveKeyPrefix+entity.ArchiveDoctors).Err())

	restored := records.NewStore()
	restoredSvc := NewArchiveService(nil, redisClient, svc.log, restored, svc.archiveRepo, time.Hour)
	require.NoError(t, restoredSvc.RestoreOnStartup(context.Background()))

	_, ok := restored.FindAppointment(appt.ID)
	assert.True(t, ok)
	_, ok = restored.FindDoctor("D1")
	assert.True(t, ok)
}

func TestRestoreOnStartup_AllocatorResumesAfterRestore(t *testing.T) {
	svc, store, repo, redisClient := newTestArchiveService(t)
	first := seedStore(t, store)
	require.NoError(t, svc.SaveSnapshot(context.Background()))

	restored := records.NewStore()
	restoredSvc := NewArchiveService(nil, redisClient, svc.log, restored, repo, time.Hour)
	require.NoError(t, restoredSvc.RestoreOnStartup(context.Background()))

	next, err := restored.ScheduleAppointment("P1", "D1", "followup", "2099-01-02 09:00")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, next.ID)
	assert.Equal(t, "2", next.ID)
}

func TestStop_PersistsFinalSnapshotAndIsIdempotent(t *testing.T) {
	svc, store, repo, _ := newTestArchiveService(t)
	seedStore(t, store)

	svc.Start()
	svc.Stop()
	svc.Stop()

	for _, name := range archiveCollections {
		_, ok := repo.blobs[name]
		assert.True(t, ok, "missing final snapshot blob %s", name)
	}
}
