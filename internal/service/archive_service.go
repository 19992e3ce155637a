package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/repository"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key prefix for mirrored collection blobs.
	redisArchiveKeyPrefix = "archive:"

	// Timeout for snapshot persistence during shutdown.
	archiveSaveTimeout = 10 * time.Second
)

var archiveCollections = []string{
	entity.ArchivePatients,
	entity.ArchiveDoctors,
	entity.ArchiveAppointments,
}

// ArchiveService snapshots the in-memory record store to PostgreSQL and
// mirrors the blobs to Redis. On startup it restores whichever snapshot is
// reachable (Redis first, then the database); a store with no snapshot
// anywhere simply starts fresh.
//
// The record store itself never blocks on disk or network: snapshots read a
// wholesale export and persistence happens out here.
type ArchiveService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	store       *records.Store
	archiveRepo repository.ArchiveRepository
	interval    time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewArchiveService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	store *records.Store,
	archiveRepo repository.ArchiveRepository,
	interval time.Duration,
) *ArchiveService {
	return &ArchiveService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		store:       store,
		archiveRepo: archiveRepo,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// RestoreOnStartup loads the most recent snapshot into the store. Should be
// called before the service starts accepting traffic.
func (s *ArchiveService) RestoreOnStartup(ctx context.Context) error {
	archive, source, err := s.loadArchive(ctx)
	if err != nil {
		return err
	}
	if archive == nil {
		s.log.Info("No saved snapshot found, starting with a fresh record store")
		return nil
	}

	s.store.Import(*archive)
	s.log.Infof("Record store restored from %s: patients=%d, doctors=%d, appointments=%d",
		source, len(archive.Patients), len(archive.Doctors), len(archive.Appointments))
	return nil
}

// Start launches the periodic snapshot loop. Call Stop for a final snapshot
// and graceful shutdown.
func (s *ArchiveService) Start() {
	s.wg.Add(1)
	go s.snapshotLoop()
}

// Stop shuts the loop down and persists one last snapshot.
// Safe to call multiple times.
func (s *ArchiveService) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	close(s.stopChan)
	s.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), archiveSaveTimeout)
	defer cancel()
	if err := s.SaveSnapshot(ctx); err != nil {
		s.log.Errorf("Failed to save final snapshot: %+v", err)
		return
	}
	s.log.Info("ArchiveService stopped, final snapshot saved")
}

// SaveSnapshot persists the current state of the store: one blob per
// collection, written to PostgreSQL as a single transactional generation and
// mirrored to Redis. A Redis failure is logged but not fatal; the database
// copy is the durable one.
func (s *ArchiveService) SaveSnapshot(ctx context.Context) error {
	archive := s.store.Export()

	blobs, err := marshalArchive(archive)
	if err != nil {
		return err
	}

	savedAt := time.Now()
	generation := make([]*entity.ArchiveBlob, 0, len(archiveCollections))
	for _, name := range archiveCollections {
		generation = append(generation, &entity.ArchiveBlob{Name: name, Data: blobs[name], SavedAt: savedAt})
	}
	if err := s.archiveRepo.SaveAll(s.db, generation); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	pipe := s.redisClient.Pipeline()
	for _, name := range archiveCollections {
		pipe.Set(ctx, redisArchiveKeyPrefix+name, blobs[name], 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to mirror snapshot to Redis (non-fatal): %+v", err)
	}

	return nil
}

func (s *ArchiveService) snapshotLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), archiveSaveTimeout)
			if err := s.SaveSnapshot(ctx); err != nil {
				s.log.Errorf("Periodic snapshot failed: %+v", err)
			}
			cancel()
		case <-s.stopChan:
			return
		}
	}
}

// loadArchive returns the restored archive and where it came from, or
// (nil, "", nil) when no snapshot exists anywhere.
func (s *ArchiveService) loadArchive(ctx context.Context) (*records.Archive, string, error) {
	blobs, err := s.loadFromRedis(ctx)
	if err == nil && blobs != nil {
		archive, err := unmarshalArchive(blobs)
		if err == nil {
			return archive, "redis", nil
		}
		s.log.Warnf("Redis snapshot is unreadable, falling back to database: %+v", err)
	} else if err != nil {
		s.log.Warnf("Redis unavailable during restore, falling back to database: %+v", err)
	}

	blobs, err = s.loadFromDatabase()
	if err != nil {
		return nil, "", err
	}
	if blobs == nil {
		return nil, "", nil
	}
	archive, err := unmarshalArchive(blobs)
	if err != nil {
		return nil, "", fmt.Errorf("decode database snapshot: %w", err)
	}
	return archive, "database", nil
}

// loadFromRedis returns nil blobs when any collection key is missing; a
// partial mirror is not trusted.
func (s *ArchiveService) loadFromRedis(ctx context.Context) (map[string][]byte, error) {
	blobs := make(map[string][]byte, len(archiveCollections))
	for _, name := range archiveCollections {
		data, err := s.redisClient.Get(ctx, redisArchiveKeyPrefix+name).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		blobs[name] = data
	}
	return blobs, nil
}

func (s *ArchiveService) loadFromDatabase() (map[string][]byte, error) {
	blobs := make(map[string][]byte, len(archiveCollections))
	found := false
	for _, name := range archiveCollections {
		blob, err := s.archiveRepo.FindByName(s.db, name)
		if err != nil {
			return nil, fmt.Errorf("load %s snapshot: %w", name, err)
		}
		if blob == nil {
			continue
		}
		blobs[name] = blob.Data
		found = true
	}
	if !found {
		return nil, nil
	}
	return blobs, nil
}

func marshalArchive(archive records.Archive) (map[string][]byte, error) {
	patients, err := json.Marshal(archive.Patients)
	if err != nil {
		return nil, fmt.Errorf("encode patients: %w", err)
	}
	doctors, err := json.Marshal(archive.Doctors)
	if err != nil {
		return nil, fmt.Errorf("encode doctors: %w", err)
	}
	appointments, err := json.Marshal(archive.Appointments)
	if err != nil {
		return nil, fmt.Errorf("encode appointments: %w", err)
	}
	return map[string][]byte{
		entity.ArchivePatients:     patients,
		entity.ArchiveDoctors:      doctors,
		entity.ArchiveAppointments: appointments,
	}, nil
}

func unmarshalArchive(blobs map[string][]byte) (*records.Archive, error) {
	var archive records.Archive
	if data, ok := blobs[entity.ArchivePatients]; ok {
		if err := json.Unmarshal(data, &archive.Patients); err != nil {
			return nil, fmt.Errorf("decode patients: %w", err)
		}
	}
	if data, ok := blobs[entity.ArchiveDoctors]; ok {
		if err := json.Unmarshal(data, &archive.Doctors); err != nil {
			return nil, fmt.Errorf("decode doctors: %w", err)
		}
	}
	if data, ok := blobs[entity.ArchiveAppointments]; ok {
		if err := json.Unmarshal(data, &archive.Appointments); err != nil {
			return nil, fmt.Errorf("decode appointments: %w", err)
		}
	}
	return &archive, nil
}
