package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestCompletionHelp(t *testing.T) {
	help := completionHelp("mclaunch")
	if strings.Contains(help, "NAME") {
		t.Errorf("placeholder left in help:\n%s", help)
	}
	if !strings.Contains(help, "source <(mclaunch completion zsh)") {
		t.Errorf("help does not use the binary name:\n%s", help)
	}
}

func TestCompleteVersions(t *testing.T) {
	root := t.TempDir()
	viper.Set("directory", root)
	t.Cleanup(func() { viper.Set("directory", "") })

	dir := filepath.Join(root, "versions", "1.20.4")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "1.20.4.json"), []byte(`{"id":"1.20.4","type":"release"}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, directive := completeVersions(rootCmd, nil, "1.20")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}
	want := []string{"latest\tnewest release", "snapshot\tnewest snapshot", "1.20.4\tinstalled release"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("completeVersions() = %q, want %q", got, want)
	}

	if got, _ := completeVersions(rootCmd, nil, "1.19"); len(got) != 2 {
		t.Errorf("completeVersions(1.19) = %q", got)
	}

	if got, _ := completeVersions(rootCmd, []string{"1.20"}, ""); len(got) != 0 {
		t.Errorf("second argument completed with %v", got)
	}
}
