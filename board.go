package capex

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Severity qualifies a user-facing notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

// Notifier receives the outcome of board operations. Implementations must be
// safe for concurrent use; settlements arrive from whichever goroutine ran
// the store call.
type Notifier interface {
	Notify(sev Severity, message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Severity, string) {}

// statusUpdater is the single store operation the board needs.
type statusUpdater interface {
	UpdateProjectStatus(ctx context.Context, rowIndex int, status string) error
}

// Board is the Kanban view of the portfolio. Moves apply optimistically: the
// local column change is visible immediately, and is rolled back if the
// store later refuses it. A sequence counter tags every state change so a
// settlement arriving after a newer change is discarded instead of clobbering
// fresh data.
type Board struct {
	mu       sync.Mutex
	seq      uint64
	projects []ProjectWithDetails
	notify   Notifier
}

// NewBoard builds a board over the joined projects. notify may be nil.
func NewBoard(projects []ProjectWithDetails, notify Notifier) *Board {
	if notify == nil {
		notify = nopNotifier{}
	}
	b := &Board{notify: notify}
	b.Reset(projects)
	return b
}

// Reset replaces the board content wholesale, after a refresh. Pending
// settlements from before the reset can no longer roll anything back.
func (b *Board) Reset(projects []ProjectWithDetails) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.projects = append([]ProjectWithDetails(nil), projects...)
}

// Projects returns the current board content, in snapshot order.
func (b *Board) Projects() []ProjectWithDetails {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ProjectWithDetails(nil), b.projects...)
}

// ByStage returns the column for a stage. Matching trims and lowers both
// sides, so hand-edited statut values still land in their column.
func (b *Board) ByStage(stage string) []ProjectWithDetails {
	want := strings.ToLower(strings.TrimSpace(stage))
	b.mu.Lock()
	defer b.mu.Unlock()
	var col []ProjectWithDetails
	for _, p := range b.projects {
		if strings.ToLower(strings.TrimSpace(p.Status)) == want {
			col = append(col, p)
		}
	}
	return col
}

// Move transitions the project at rowIndex to stage. The local change is
// applied before the store call; on refusal the whole pre-move state is
// restored, unless the board changed again in between.
func (b *Board) Move(ctx context.Context, store statusUpdater, rowIndex int, stage string) error {
	stage, err := ParseStage(stage)
	if err != nil {
		return err
	}

	b.mu.Lock()
	found := -1
	for i, p := range b.projects {
		if p.RowIndex == rowIndex {
			found = i
			break
		}
	}
	if found < 0 {
		b.mu.Unlock()
		return fmt.Errorf("no project at row %d", rowIndex)
	}
	before := append([]ProjectWithDetails(nil), b.projects...)
	b.projects[found].Status = stage
	b.seq++
	seq := b.seq
	name := b.projects[found].Name
	b.mu.Unlock()

	if err := store.UpdateProjectStatus(ctx, rowIndex, stage); err != nil {
		b.mu.Lock()
		if b.seq == seq {
			b.projects = before
		}
		b.mu.Unlock()
		b.notify.Notify(SeverityError, fmt.Sprintf("could not move %q to %q: %v", name, stage, err))
		return err
	}
	b.notify.Notify(SeveritySuccess, fmt.Sprintf("%q moved to %q", name, stage))
	return nil
}
