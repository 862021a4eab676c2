package store

import (
	"context"
	"testing"

	"github.com/adilev/focusboard/internal/model"
	"github.com/adilev/focusboard/internal/storage"
)

func TestTemplatesStartWithDefaults(t *testing.T) {
	s := NewTemplateStore(testJournal())

	templates := s.Templates()
	if len(templates) != 4 {
		t.Fatalf("expected the 4 built-in templates, got %d", len(templates))
	}
	for _, tpl := range templates {
		if !tpl.IsDefault {
			t.Errorf("template %s must be marked default", tpl.ID)
		}
	}
}

func TestTemplateAddCustomAppendsAfterDefaults(t *testing.T) {
	s := NewTemplateStore(testJournal())

	custom := s.Add("Standup", "☀️", model.TemplatePayload{
		Title:    "Standup notes: ",
		Priority: model.PriorityP3,
	})

	templates := s.Templates()
	if len(templates) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(templates))
	}
	if templates[4].ID != custom.ID {
		t.Error("custom templates must follow the defaults")
	}
	if templates[4].IsDefault {
		t.Error("custom templates must not be marked default")
	}
}

func TestTemplateDeleteDefaultIsNoOp(t *testing.T) {
	s := NewTemplateStore(testJournal())

	s.Delete("tpl-bug")

	if s.Template("tpl-bug") == nil {
		t.Error("built-in templates must not be deletable")
	}
}

func TestTemplateDeleteCustom(t *testing.T) {
	s := NewTemplateStore(testJournal())
	custom := s.Add("Temp", "", model.TemplatePayload{Title: "x"})

	s.Delete(custom.ID)

	if s.Template(custom.ID) != nil {
		t.Error("custom template must be deletable")
	}
	if len(s.Templates()) != 4 {
		t.Error("defaults must be untouched")
	}
}

func TestTemplateResetToDefaults(t *testing.T) {
	s := NewTemplateStore(testJournal())
	s.Add("One", "", model.TemplatePayload{Title: "1"})
	s.Add("Two", "", model.TemplatePayload{Title: "2"})

	s.ResetToDefaults()

	if len(s.Templates()) != 4 {
		t.Errorf("reset must drop every custom template, got %d", len(s.Templates()))
	}
}

func TestOnlyCustomTemplatesPersist(t *testing.T) {
	mem := storage.NewMemoryStore()
	journal := storage.NewJournal(mem, nil)

	s := NewTemplateStore(journal)
	custom := s.Add("Custom", "", model.TemplatePayload{Title: "c"})
	journal.Wait()

	reloaded := NewTemplateStore(journal)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(reloaded.Templates()) != 5 {
		t.Fatalf("expected 4 defaults + 1 custom after reload, got %d", len(reloaded.Templates()))
	}
	if reloaded.Template(custom.ID) == nil {
		t.Error("custom template must survive reload")
	}
}

func TestTemplateDraftSeedsTask(t *testing.T) {
	s := NewTemplateStore(testJournal())
	tpl := s.Template("tpl-bug")
	if tpl == nil {
		t.Fatal("missing built-in bug template")
	}

	kanban := NewKanbanStore(testJournal())
	task := kanban.AddTask(tpl.Draft())

	if task.Title != "Fix: " {
		t.Errorf("expected template title prefix, got %q", task.Title)
	}
	if task.Priority != model.PriorityP1 {
		t.Errorf("expected template priority p1, got %s", task.Priority)
	}
	if len(task.Subtasks) != 3 {
		t.Errorf("expected 3 seeded subtasks, got %d", len(task.Subtasks))
	}
}
