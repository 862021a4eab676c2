// Package store holds the application state layer: one service object per
// concern, constructed once at startup and injected where needed. Every
// mutator updates in-memory state synchronously and journals the full
// snapshot fire-and-forget; unknown ids are silent no-ops.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
	"github.com/google/uuid"
)

// kanbanSnapshot is the persisted document under the kanban key
type kanbanSnapshot struct {
	Tasks  []model.Task  `json:"tasks"`
	Labels []model.Label `json:"labels"`
}

// KanbanStore owns board tasks, labels and the active filter.
type KanbanStore struct {
	journal *storage.Journal
	tasks   []model.Task
	labels  []model.Label
	filter  model.FilterState
}

// NewKanbanStore creates an empty store; call Load to read persisted state.
func NewKanbanStore(journal *storage.Journal) *KanbanStore {
	return &KanbanStore{journal: journal}
}

// Load reads the persisted snapshot. A missing key leaves the store empty.
func (s *KanbanStore) Load(ctx context.Context) error {
	var snap kanbanSnapshot
	if _, err := s.journal.Load(ctx, storage.KeyKanban, &snap); err != nil {
		return err
	}
	s.tasks = snap.Tasks
	s.labels = snap.Labels
	return nil
}

func (s *KanbanStore) persist() {
	s.journal.Write(storage.KeyKanban, kanbanSnapshot{
		Tasks:  s.tasks,
		Labels: s.labels,
	})
}

// AddTask creates a task from the draft with defaults applied:
// status todo, priority p2, empty labels and subtasks.
func (s *KanbanStore) AddTask(draft model.TaskDraft) model.Task {
	now := time.Now()
	task := model.Task{
		ID:               uuid.New().String(),
		Title:            draft.Title,
		Description:      draft.Description,
		Status:           draft.Status,
		Priority:         draft.Priority,
		Labels:           append([]string{}, draft.Labels...),
		Subtasks:         []model.Subtask{},
		DueDate:          draft.DueDate,
		EstimatedMinutes: draft.EstimatedMinutes,
		AIGenerated:      draft.AIGenerated,
		CodeSnippet:      draft.CodeSnippet,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityP2
	}
	for _, text := range draft.Subtasks {
		task.Subtasks = append(task.Subtasks, model.Subtask{
			ID:   uuid.New().String(),
			Text: text,
		})
	}

	s.tasks = append(s.tasks, task)
	s.persist()
	return task
}

// UpdateTask merges the patch into the task and refreshes UpdatedAt.
// Unknown ids are a no-op.
func (s *KanbanStore) UpdateTask(id string, patch model.TaskPatch) {
	i := s.taskIndex(id)
	if i < 0 {
		return
	}
	t := &s.tasks[i]

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Labels != nil {
		t.Labels = append([]string{}, (*patch.Labels)...)
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.EstimatedMinutes != nil {
		t.EstimatedMinutes = *patch.EstimatedMinutes
	}
	if patch.AIGenerated != nil {
		t.AIGenerated = *patch.AIGenerated
	}
	if patch.CodeSnippet != nil {
		t.CodeSnippet = *patch.CodeSnippet
	}

	s.touch(t)
	s.persist()
}

// DeleteTask removes the task and its subtasks
func (s *KanbanStore) DeleteTask(id string) {
	i := s.taskIndex(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist()
}

// MoveTask changes a task's status (drag-drop between columns)
func (s *KanbanStore) MoveTask(id string, status model.Status) {
	st := status
	s.UpdateTask(id, model.TaskPatch{Status: &st})
}

// ReorderTasks replaces the ordering of the tasks currently in status with
// the given id sequence. Tasks in other statuses keep their relative order.
func (s *KanbanStore) ReorderTasks(status model.Status, orderedIDs []string) {
	inStatus := make(map[string]model.Task)
	for _, t := range s.tasks {
		if t.Status == status {
			inStatus[t.ID] = t
		}
	}

	reordered := make([]model.Task, 0, len(inStatus))
	for _, id := range orderedIDs {
		if t, ok := inStatus[id]; ok {
			reordered = append(reordered, t)
			delete(inStatus, id)
		}
	}
	// Tasks in the column but absent from the sequence keep their old order
	for _, t := range s.tasks {
		if t.Status == status {
			if _, left := inStatus[t.ID]; left {
				reordered = append(reordered, t)
			}
		}
	}

	next := make([]model.Task, 0, len(s.tasks))
	ri := 0
	for _, t := range s.tasks {
		if t.Status == status {
			next = append(next, reordered[ri])
			ri++
		} else {
			next = append(next, t)
		}
	}
	s.tasks = next
	s.persist()
}

// AddSubtask appends a subtask to the parent task
func (s *KanbanStore) AddSubtask(taskID, text string) {
	i := s.taskIndex(taskID)
	if i < 0 {
		return
	}
	s.tasks[i].Subtasks = append(s.tasks[i].Subtasks, model.Subtask{
		ID:   uuid.New().String(),
		Text: text,
	})
	s.touch(&s.tasks[i])
	s.persist()
}

// ToggleSubtask flips a subtask's completed flag
func (s *KanbanStore) ToggleSubtask(taskID, subtaskID string) {
	i := s.taskIndex(taskID)
	if i < 0 {
		return
	}
	for j := range s.tasks[i].Subtasks {
		if s.tasks[i].Subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks[j].Completed = !s.tasks[i].Subtasks[j].Completed
			s.touch(&s.tasks[i])
			s.persist()
			return
		}
	}
}

// DeleteSubtask removes a subtask from the parent task
func (s *KanbanStore) DeleteSubtask(taskID, subtaskID string) {
	i := s.taskIndex(taskID)
	if i < 0 {
		return
	}
	subs := s.tasks[i].Subtasks
	for j := range subs {
		if subs[j].ID == subtaskID {
			s.tasks[i].Subtasks = append(subs[:j], subs[j+1:]...)
			s.touch(&s.tasks[i])
			s.persist()
			return
		}
	}
}

// AddLabel creates a label
func (s *KanbanStore) AddLabel(name, color string) model.Label {
	label := model.Label{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
	s.labels = append(s.labels, label)
	s.persist()
	return label
}

// DeleteLabel removes the label and strips its id from every task
func (s *KanbanStore) DeleteLabel(id string) {
	found := false
	for i := range s.labels {
		if s.labels[i].ID == id {
			s.labels = append(s.labels[:i], s.labels[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i := range s.tasks {
		for j := range s.tasks[i].Labels {
			if s.tasks[i].Labels[j] == id {
				s.tasks[i].Labels = append(s.tasks[i].Labels[:j], s.tasks[i].Labels[j+1:]...)
				break
			}
		}
	}
	s.persist()
}

// Tasks returns the full unfiltered task list
func (s *KanbanStore) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

// Task returns the task by id, or nil
func (s *KanbanStore) Task(id string) *model.Task {
	i := s.taskIndex(id)
	if i < 0 {
		return nil
	}
	t := s.tasks[i]
	return &t
}

// Labels returns all labels
func (s *KanbanStore) Labels() []model.Label {
	return append([]model.Label(nil), s.labels...)
}

// Label returns the label by id, or nil
func (s *KanbanStore) Label(id string) *model.Label {
	for _, l := range s.labels {
		if l.ID == id {
			out := l
			return &out
		}
	}
	return nil
}

// SetFilter replaces the active filter. Filters are transient.
func (s *KanbanStore) SetFilter(f model.FilterState) {
	s.filter = f
}

// Filter returns the active filter
func (s *KanbanStore) Filter() model.FilterState {
	return s.filter
}

// ResetFilter restores the match-everything filter
func (s *KanbanStore) ResetFilter() {
	s.filter = model.FilterState{}
}

// FilteredTasks applies the active filter: text search over
// title+description, status allow-list, priority allow-list, label
// any-of intersection, AI tri-state, due-date range (inclusive, only
// for tasks that have a due date).
func (s *KanbanStore) FilteredTasks() []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if s.matches(&t) {
			out = append(out, t)
		}
	}
	return out
}

// TasksByStatus is FilteredTasks restricted to one column. The active
// filter always applies, even when querying by column.
func (s *KanbanStore) TasksByStatus(status model.Status) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.Status == status && s.matches(&t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *KanbanStore) matches(t *model.Task) bool {
	f := &s.filter

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}

	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, t.Status) {
		return false
	}

	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, t.Priority) {
		return false
	}

	if len(f.Labels) > 0 {
		any := false
		for _, id := range f.Labels {
			if t.HasLabel(id) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if f.AIGenerated != nil && t.AIGenerated != *f.AIGenerated {
		return false
	}

	// The due range only applies to tasks that have a due date
	if t.DueDate != nil {
		if f.DueAfter != nil && t.DueDate.Before(*f.DueAfter) {
			return false
		}
		if f.DueBefore != nil && t.DueDate.After(*f.DueBefore) {
			return false
		}
	}

	return true
}

func (s *KanbanStore) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// touch refreshes UpdatedAt, nudging it forward when the wall clock has
// not advanced since the previous mutation.
func (s *KanbanStore) touch(t *model.Task) {
	now := time.Now()
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Millisecond)
	}
	t.UpdatedAt = now
}

func containsStatus(list []model.Status, v model.Status) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(list []model.Priority, v model.Priority) bool {
	for _, p := range list {
		if p == v {
			return true
		}
	}
	return false
}
