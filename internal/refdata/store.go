// Package refdata loads and memoizes the static reference documents the
// gateway depends on: the lecturer map (email → teacher id) and the
// enrollment index (teacher id → course codes), the latter assembled from
// several partition documents.
//
// Both structures are built at most once per process and are immutable once
// committed. A build is committed only when every document loaded cleanly;
// a failed build memoizes nothing, so the next caller retries from scratch.
package refdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LecturerMap maps a normalized (trimmed, lower-cased) email to a teacher id.
type LecturerMap map[string]string

// CourseSet is a set of course codes.
type CourseSet map[string]struct{}

func (s CourseSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// EnrollmentIndex maps a teacher id to the set of course codes that teacher
// is associated with.
type EnrollmentIndex map[string]CourseSet

// Fetcher retrieves one reference document by its asset path.
type Fetcher interface {
	Fetch(path string) ([]byte, error)
}

// Store memoizes the reference data. Builds are deduplicated so concurrent
// first callers trigger a single fetch pass.
type Store struct {
	fetcher         Fetcher
	lecturerMapPath string
	partPaths       []string

	group singleflight.Group

	mu         sync.RWMutex
	lecturers  LecturerMap
	enrollment EnrollmentIndex
}

func NewStore(fetcher Fetcher, lecturerMapPath string, partPaths []string) *Store {
	return &Store{
		fetcher:         fetcher,
		lecturerMapPath: lecturerMapPath,
		partPaths:       partPaths,
	}
}

// PartPaths returns the enrollment partition paths for a deployment with n
// partitions, in fetch order.
func PartPaths(n int) []string {
	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		paths = append(paths, fmt.Sprintf("data/enrollment-data.part%03d.json", i))
	}
	return paths
}

// LecturerMap returns the memoized lecturer map, fetching and parsing the
// lecturer-map document on first use.
func (s *Store) LecturerMap() (LecturerMap, error) {
	s.mu.RLock()
	cached := s.lecturers
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do("lecturers", func() (any, error) {
		s.mu.RLock()
		cached := s.lecturers
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		m, err := s.buildLecturerMap()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.lecturers = m
		s.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(LecturerMap), nil
}

// EnrollmentIndex returns the memoized enrollment index, fetching every
// partition document in declared order on first use. The index is committed
// only after all partitions load; a partial build is discarded.
func (s *Store) EnrollmentIndex() (EnrollmentIndex, error) {
	s.mu.RLock()
	cached := s.enrollment
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do("enrollment", func() (any, error) {
		s.mu.RLock()
		cached := s.enrollment
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		idx, err := s.buildEnrollmentIndex()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.enrollment = idx
		s.mu.Unlock()
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(EnrollmentIndex), nil
}

func (s *Store) buildLecturerMap() (LecturerMap, error) {
	raw, err := s.fetcher.Fetch(s.lecturerMapPath)
	if err != nil {
		return nil, err
	}
	var doc struct {
		EmailToTeacherID map[string]string `json:"emailToTeacherId"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &FetchError{Path: s.lecturerMapPath, Reason: "parse: " + err.Error()}
	}
	m := make(LecturerMap, len(doc.EmailToTeacherID))
	for email, teacherID := range doc.EmailToTeacherID {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || teacherID == "" {
			continue
		}
		m[email] = teacherID
	}
	return m, nil
}

func (s *Store) buildEnrollmentIndex() (EnrollmentIndex, error) {
	idx := make(EnrollmentIndex)
	for _, part := range s.partPaths {
		raw, err := s.fetcher.Fetch(part)
		if err != nil {
			return nil, err
		}
		var doc struct {
			EnrollmentData []map[string]any `json:"enrollmentData"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, &FetchError{Path: part, Reason: "parse: " + err.Error()}
		}
		for _, row := range doc.EnrollmentData {
			teacherID := fieldString(row, "teacherId", "TeacherId")
			courseCode := fieldString(row, "CourseCode", "courseCode")
			if teacherID == "" || courseCode == "" {
				continue
			}
			set, ok := idx[teacherID]
			if !ok {
				set = make(CourseSet)
				idx[teacherID] = set
			}
			set[courseCode] = struct{}{}
		}
	}
	return idx, nil
}

// fieldString coalesces a row field across its casing variants, returning
// the first value with a non-empty trimmed string form. Numeric ids are
// stringified since the partition documents are not consistent about types.
func fieldString(row map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := row[key]
		if !ok || v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			s = fmt.Sprint(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
