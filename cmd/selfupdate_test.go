package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSelfUpdateCmd(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()

	if selfUpdateCmd.Use != "self-update" {
		t.Errorf("Expected Use to be 'self-update', got %s", selfUpdateCmd.Use)
	}

	if selfUpdateCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if selfUpdateCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if selfUpdateCmd.RunE == nil {
		t.Error("Expected RunE function to be set")
	}
}

func TestSelfUpdateRefusesUnreleasedBuilds(t *testing.T) {
	// A binary built without -ldflags carries "dev" (or nothing); updating
	// such a build with a released asset would be a downgrade-in-disguise,
	// so the command must refuse before touching the network.
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	for _, version := range []string{"dev", ""} {
		t.Run("version "+version, func(t *testing.T) {
			rootCmd.Version = version

			selfUpdateCmd := newSelfUpdateCmd()
			var buf bytes.Buffer
			selfUpdateCmd.SetOut(&buf)
			selfUpdateCmd.SetErr(&buf)
			selfUpdateCmd.SetArgs([]string{})

			err := selfUpdateCmd.Execute()
			if err == nil {
				t.Fatalf("Expected self-update to refuse version %q", version)
			}

			if !strings.Contains(err.Error(), "cannot self-update a development version") {
				t.Errorf("Expected refusal message, got: %s", err.Error())
			}
			if !strings.Contains(err.Error(), "install a released build") {
				t.Errorf("Expected the error to tell the user what to do, got: %s", err.Error())
			}
		})
	}
}

func TestSelfUpdateRejectsArguments(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()
	var buf bytes.Buffer
	selfUpdateCmd.SetOut(&buf)
	selfUpdateCmd.SetErr(&buf)
	selfUpdateCmd.SetArgs([]string{"v2.0.0"})

	if err := selfUpdateCmd.Execute(); err == nil {
		t.Error("Expected an error for positional arguments; the target version is not selectable")
	}
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()
	var buf bytes.Buffer
	selfUpdateCmd.SetOut(&buf)
	selfUpdateCmd.SetErr(&buf) // Also capture stderr for help
	selfUpdateCmd.SetArgs([]string{"--help"})

	err := selfUpdateCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing self-update help: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Checks for the latest release") {
		t.Errorf("Help output should contain long description. Got: %q", output)
	}

	if !strings.Contains(output, "self-update") {
		t.Errorf("Help output should contain command name. Got: %q", output)
	}
}

func TestGithubRepoSlug(t *testing.T) {
	// Releases are published from the registrar's repository.
	expected := "cisagov/govreg"
	if githubRepoSlug != expected {
		t.Errorf("Expected githubRepoSlug to be %s, got %s", expected, githubRepoSlug)
	}
}

// Note: We don't test the actual update functionality as it requires network access
// and would attempt to download and replace the binary. In a real-world scenario,
// you might want to create integration tests that run in a controlled environment
// or mock the selfupdate library for more comprehensive testing.
