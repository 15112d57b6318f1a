package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"salom-api/internal/model"
)

// Collection names. Each collection is persisted as <name>.json in the data
// directory, a pretty-printed JSON array in insertion order.
const (
	Districts   = "districts"
	Departments = "departments"
	Employees   = "employees"
	Attendance  = "attendance"
)

// lockOrder is the global acquisition order for collection mutexes.
// Multi-collection operations must lock through Lock so two writers can
// never hold the same pair in opposite order.
var lockOrder = map[string]int{
	Districts:   0,
	Departments: 1,
	Employees:   2,
	Attendance:  3,
}

// Store reads and writes whole collections as flat JSON files. Reads degrade
// to an empty collection on any failure; writes replace the file completely.
// There is no caching: every call hits the disk.
type Store struct {
	dataDir string
	log     *zap.Logger
	mu      map[string]*sync.Mutex
}

// New creates the data directory if needed and returns a store over it.
func New(dataDir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	mu := make(map[string]*sync.Mutex, len(lockOrder))
	for name := range lockOrder {
		mu[name] = &sync.Mutex{}
	}
	return &Store{dataDir: dataDir, log: log, mu: mu}, nil
}

// Lock acquires the mutexes of the given collections in the global order and
// returns the matching unlock. Callers mutating several collections in one
// operation must take a single Lock covering all of them.
func (s *Store) Lock(collections ...string) func() {
	names := append([]string(nil), collections...)
	sort.Slice(names, func(i, j int) bool { return lockOrder[names[i]] < lockOrder[names[j]] })
	for _, name := range names {
		s.mu[name].Lock()
	}
	return func() {
		for i := len(names) - 1; i >= 0; i-- {
			s.mu[names[i]].Unlock()
		}
	}
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// Exists reports whether the collection's backing file is present on disk.
func (s *Store) Exists(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

// load reads a collection file into records. A missing, unreadable or corrupt
// file yields an empty slice, never an error: availability wins over
// surfacing storage faults to the request path.
func load[T any](s *Store, collection string) []T {
	path := s.path(collection)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("read collection failed, treating as empty",
				zap.String("collection", collection), zap.Error(err))
		}
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("decode collection failed, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return []T{}
	}
	return records
}

// save overwrites the collection file with the full record sequence,
// two-space indented, HTML escaping off so non-ASCII text and URLs are
// stored verbatim.
func save[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

func (s *Store) LoadDistricts() []model.District { return load[model.District](s, Districts) }

func (s *Store) SaveDistricts(records []model.District) error {
	return save(s, Districts, records)
}

func (s *Store) LoadDepartments() []model.Department {
	return load[model.Department](s, Departments)
}

func (s *Store) SaveDepartments(records []model.Department) error {
	return save(s, Departments, records)
}

func (s *Store) LoadEmployees() []model.Employee { return load[model.Employee](s, Employees) }

func (s *Store) SaveEmployees(records []model.Employee) error {
	return save(s, Employees, records)
}

func (s *Store) LoadAttendance() []model.AttendanceRecord {
	return load[model.AttendanceRecord](s, Attendance)
}

func (s *Store) SaveAttendance(records []model.AttendanceRecord) error {
	return save(s, Attendance, records)
}
