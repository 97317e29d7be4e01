// Package leaderboard keeps the all-time and daily top-10 score tables
//
// Both tables are persisted through a KV collaborator as JSON under fixed keys.
// Missing or malformed stored data loads as an empty table
package leaderboard

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/supr-growth/constants"
)

const (
	KeyAllTime = "suprGrowthScores"
	KeyDaily   = "suprGrowthDailyScores"

	// DayLayout formats the calendar day that scopes the daily table
	DayLayout = "2006-01-02"
)

// Entry is one finished run on a table
type Entry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Daily is the table for one calendar day
type Daily struct {
	Date   string  `json:"date"`
	Scores []Entry `json:"scores"`
}

// Store owns both tables and writes every change through to its KV
type Store struct {
	mu      sync.Mutex
	kv      KV
	now     func() time.Time
	allTime []Entry
	daily   Daily
}

// Open loads both tables from kv; now supplies the current day for resets
func Open(kv KV, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{kv: kv, now: now}

	if err := s.load(KeyAllTime, &s.allTime); err != nil {
		log.Printf("leaderboard: all-time table unreadable, starting empty: %v", err)
		s.allTime = nil
	}
	if err := s.load(KeyDaily, &s.daily); err != nil {
		log.Printf("leaderboard: daily table unreadable, starting empty: %v", err)
		s.daily = Daily{}
	}
	s.allTime = rank(s.allTime)
	s.daily.Scores = rank(s.daily.Scores)
	if s.daily.Scores == nil {
		s.daily.Scores = []Entry{}
	}
	return s
}

// DayKey returns the daily-table key for t in t's location
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// CheckDailyReset replaces the daily table with an empty one when it belongs
// to a day other than today
func (s *Store) CheckDailyReset(today time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkDailyReset(DayKey(today))
}

func (s *Store) checkDailyReset(day string) error {
	if s.daily.Date == day {
		return nil
	}
	log.Printf("leaderboard: daily table rolled over from %q to %q", s.daily.Date, day)
	s.daily = Daily{Date: day, Scores: []Entry{}}
	return s.save(KeyDaily, s.daily)
}

// RecordRun inserts a finished run into both tables
// A blank username is stored as the default player name
func (s *Store) RecordRun(username string, score int) error {
	username = strings.TrimSpace(username)
	if username == "" {
		username = constants.DefaultPlayerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.checkDailyReset(DayKey(s.now())); err != nil {
		errs = append(errs, err)
	}

	e := Entry{Username: username, Score: score}
	s.allTime = rank(append(s.allTime, e))
	s.daily.Scores = rank(append(s.daily.Scores, e))

	if err := s.save(KeyAllTime, s.allTime); err != nil {
		errs = append(errs, err)
	}
	if err := s.save(KeyDaily, s.daily); err != nil {
		errs = append(errs, err)
	}
	log.Printf("leaderboard: recorded %q with %d", username, score)
	return errors.Join(errs...)
}

// ResetAllTime empties the all-time table; the daily table is untouched
func (s *Store) ResetAllTime() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allTime = nil
	return s.save(KeyAllTime, []Entry{})
}

// AllTime returns a copy of the all-time table, best first
func (s *Store) AllTime() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.allTime)
}

// Daily returns a copy of the daily table, best first
func (s *Store) Daily() Daily {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Daily{Date: s.daily.Date, Scores: slices.Clone(s.daily.Scores)}
}

// rank sorts descending by score, earlier entries first on ties, and keeps the top entries
func rank(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > constants.LeaderboardSize {
		entries = entries[:constants.LeaderboardSize]
	}
	return entries
}

func (s *Store) load(key string, v any) error {
	data, err := s.kv.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
