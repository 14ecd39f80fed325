package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/philosophercode/itinerary-rewind-demo/internal/model"
	"go.uber.org/zap"
)

// Loader resolves the trip document through an ordered fallback chain.
type Loader struct {
	Source     Source
	Candidates []string
	Logger     *zap.Logger

	// Now supplies the cache-busting value. Defaults to time.Now.
	Now func() time.Time
}

// Result is a successfully loaded document and the candidate it came from.
type Result struct {
	Doc       *model.TripDocument
	Candidate string
}

// Attempt records one failed candidate.
type Attempt struct {
	Candidate string
	Err       error
}

// LoadError is returned when every candidate failed.
type LoadError struct {
	Attempts []Attempt
}

func (e *LoadError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Candidate, a.Err))
	}
	return "loading trip data failed (" + strings.Join(parts, "; ") + ")"
}

func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

var (
	// ErrNoCandidates is returned when the chain is empty.
	ErrNoCandidates = errors.New("no trip data candidates configured")
	// ErrEmptyDocument marks a candidate whose body is JSON null.
	ErrEmptyDocument = errors.New("trip data is null")
)

// Load tries each candidate in order and returns the first one that both
// opens and decodes. Attempts never overlap.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	if len(l.Candidates) == 0 {
		return nil, ErrNoCandidates
	}

	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	bust := "?v=" + strconv.FormatInt(l.now().UnixMilli(), 10)

	loadErr := &LoadError{}
	for _, name := range l.Candidates {
		doc, err := l.attempt(ctx, name+bust)
		if err == nil {
			log.Debug("loaded trip data", zap.String("candidate", name))
			return &Result{Doc: doc, Candidate: name}, nil
		}
		log.Debug("trip data candidate failed", zap.String("candidate", name), zap.Error(err))
		loadErr.Attempts = append(loadErr.Attempts, Attempt{Candidate: name, Err: err})

		if ctx.Err() != nil {
			break
		}
	}

	log.Error("error loading trip data", zap.Error(loadErr))
	return nil, loadErr
}

func (l *Loader) attempt(ctx context.Context, name string) (*model.TripDocument, error) {
	rc, err := l.Source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading trip data: %w", err)
	}

	var doc *model.TripDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing trip data: %w", err)
	}
	if doc == nil {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
