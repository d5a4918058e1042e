package cli

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/timetrack/internal/storage"
)

func setupContext(t *testing.T) *Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "data.json"))
	return &Context{Store: store}
}

func TestPickProjectLastUsed(t *testing.T) {
	ctx := setupContext(t)

	if _, err := ctx.Store.CreateProject("Alpha", "#3B82F6"); err != nil {
		t.Fatal(err)
	}
	beta, err := ctx.Store.CreateProject("Beta", "#EF4444")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Store.CreateEntry(beta.ID, "2025-06-01", 2, ""); err != nil {
		t.Fatal(err)
	}

	project, err := (&LogCmd{}).pickProject(ctx)
	if err != nil {
		t.Fatalf("pickProject() returned unexpected error: %v", err)
	}
	if project.ID != beta.ID {
		t.Errorf("pickProject() = %q, want the last used project %q", project.Name, beta.Name)
	}
}

func TestPickProjectFlagWins(t *testing.T) {
	ctx := setupContext(t)

	alpha, err := ctx.Store.CreateProject("Alpha", "#3B82F6")
	if err != nil {
		t.Fatal(err)
	}
	beta, err := ctx.Store.CreateProject("Beta", "#EF4444")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Store.CreateEntry(beta.ID, "2025-06-01", 2, ""); err != nil {
		t.Fatal(err)
	}

	project, err := (&LogCmd{Project: "alpha"}).pickProject(ctx)
	if err != nil {
		t.Fatalf("pickProject() returned unexpected error: %v", err)
	}
	if project.ID != alpha.ID {
		t.Errorf("pickProject() = %q, want the flagged project %q", project.Name, alpha.Name)
	}
}

func TestPickProjectNoDefault(t *testing.T) {
	ctx := setupContext(t)

	// No projects at all
	if _, err := (&LogCmd{}).pickProject(ctx); err == nil {
		t.Error("pickProject() with no projects did not return an error")
	}

	// Projects exist but nothing has been logged yet: an arbitrary pick
	// would be surprising, so this must error too
	if _, err := ctx.Store.CreateProject("Alpha", "#3B82F6"); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Store.CreateProject("Beta", "#EF4444"); err != nil {
		t.Fatal(err)
	}
	if _, err := (&LogCmd{}).pickProject(ctx); err == nil {
		t.Error("pickProject() with no logged entries did not return an error")
	}
}
