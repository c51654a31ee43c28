package downloadmgr

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/minepkg/mclaunch/internals/merrors"
)

func TestDownloadManager_Start(t *testing.T) {
	content := []byte("asset")
	srv, _ := fileServer(t, content)
	root := t.TempDir()

	mgr := New(root, srv.Client())
	var progress []int
	mgr.OnProgress = func(done int, total int) {
		progress = append(progress, done)
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
	}

	mgr.Add(NewItem(srv.URL+"/a", filepath.Join(root, "a"), sum(content)))
	mgr.Add(NewItem(srv.URL+"/missing", filepath.Join(root, "b"), ""))
	mgr.Add(NewItem(srv.URL+"/c", filepath.Join(root, "c"), ""))

	report, err := mgr.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Changed != 2 {
		t.Errorf("Changed = %d, want 2", report.Changed)
	}
	if len(report.Failures) != 1 || report.Failures[0].Item.Target != filepath.Join(root, "b") {
		t.Errorf("Failures = %+v", report.Failures)
	}
	if len(progress) != 3 || progress[2] != 3 {
		t.Errorf("progress = %v", progress)
	}
	if mgr.Len() != 0 {
		t.Errorf("queue should be empty after start")
	}
}

func TestDownloadManager_PathEscapeIsFatal(t *testing.T) {
	srv, hits := fileServer(t, []byte("x"))
	root := t.TempDir()

	mgr := New(root, srv.Client())
	mgr.Add(NewItem(srv.URL, filepath.Join(root, "..", "escaped"), ""))
	mgr.Add(NewItem(srv.URL, filepath.Join(root, "fine"), ""))

	_, err := mgr.Start(context.Background())
	if !errors.Is(err, merrors.ErrPathEscape) {
		t.Fatalf("expected path escape, got %v", err)
	}
	if *hits != 0 {
		t.Errorf("queue should stop before any request, got %d", *hits)
	}
}
