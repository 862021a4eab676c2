package store

import (
	"context"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
	"github.com/google/uuid"
)

// defaultTemplates returns the fixed built-in set. Reconstructed from
// code on every load; never persisted.
func defaultTemplates() []model.TaskTemplate {
	return []model.TaskTemplate{
		{
			ID:        "tpl-bug",
			Name:      "Bug fix",
			Icon:      "🐛",
			IsDefault: true,
			Payload: model.TemplatePayload{
				Title:    "Fix: ",
				Priority: model.PriorityP1,
				Subtasks: []string{"Reproduce", "Fix", "Add regression test"},
			},
		},
		{
			ID:        "tpl-feature",
			Name:      "Feature",
			Icon:      "✨",
			IsDefault: true,
			Payload: model.TemplatePayload{
				Title:    "Feature: ",
				Priority: model.PriorityP2,
				Subtasks: []string{"Design", "Implement", "Test", "Document"},
			},
		},
		{
			ID:        "tpl-review",
			Name:      "Code review",
			Icon:      "👀",
			IsDefault: true,
			Payload: model.TemplatePayload{
				Title:            "Review: ",
				Priority:         model.PriorityP2,
				EstimatedMinutes: intPtr(30),
			},
		},
		{
			ID:        "tpl-meeting",
			Name:      "Meeting",
			Icon:      "📅",
			IsDefault: true,
			Payload: model.TemplatePayload{
				Title:            "Meeting: ",
				Priority:         model.PriorityP3,
				EstimatedMinutes: intPtr(60),
			},
		},
	}
}

func intPtr(v int) *int { return &v }

// TemplateStore owns reusable task presets: the fixed built-in set plus
// user-added custom templates. Only customs are persisted.
type TemplateStore struct {
	journal *storage.Journal
	custom  []model.TaskTemplate
}

func NewTemplateStore(journal *storage.Journal) *TemplateStore {
	return &TemplateStore{journal: journal}
}

func (s *TemplateStore) Load(ctx context.Context) error {
	var custom []model.TaskTemplate
	if _, err := s.journal.Load(ctx, storage.KeyTemplates, &custom); err != nil {
		return err
	}
	s.custom = custom
	return nil
}

func (s *TemplateStore) persist() {
	s.journal.Write(storage.KeyTemplates, s.custom)
}

// Templates returns built-in defaults followed by custom templates
func (s *TemplateStore) Templates() []model.TaskTemplate {
	out := defaultTemplates()
	return append(out, s.custom...)
}

// Template returns the template by id, or nil
func (s *TemplateStore) Template(id string) *model.TaskTemplate {
	for _, t := range s.Templates() {
		if t.ID == id {
			out := t
			return &out
		}
	}
	return nil
}

// Add creates a custom template
func (s *TemplateStore) Add(name, icon string, payload model.TemplatePayload) model.TaskTemplate {
	tpl := model.TaskTemplate{
		ID:      uuid.New().String(),
		Name:    name,
		Icon:    icon,
		Payload: payload,
	}
	s.custom = append(s.custom, tpl)
	s.persist()
	return tpl
}

// Update rewrites a custom template's fields. Built-in ids are also
// reachable here by convention, but since defaults are reconstructed
// from code on every load, edits to them do not survive a restart.
func (s *TemplateStore) Update(id, name, icon string, payload model.TemplatePayload) {
	for i := range s.custom {
		if s.custom[i].ID == id {
			s.custom[i].Name = name
			s.custom[i].Icon = icon
			s.custom[i].Payload = payload
			s.persist()
			return
		}
	}
}

// Delete removes a custom template. A no-op for built-in defaults.
func (s *TemplateStore) Delete(id string) {
	for i := range s.custom {
		if s.custom[i].ID == id {
			s.custom = append(s.custom[:i], s.custom[i+1:]...)
			s.persist()
			return
		}
	}
}

// ResetToDefaults drops every custom template
func (s *TemplateStore) ResetToDefaults() {
	s.custom = nil
	s.persist()
}
