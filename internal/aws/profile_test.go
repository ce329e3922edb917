package aws

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestListProfilesIn(t *testing.T) {
	t.Parallel()

	t.Run("merges credentials and config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "credentials"), `
[prod]
aws_access_key_id = AKIA
# comment
[default]
aws_access_key_id = AKIB
`)
		writeFile(t, filepath.Join(dir, "config"), `
[default]
region = us-east-1

[profile prod]
region = eu-west-1

[profile sso-dev]
sso_session = corp
region = ap-south-1

[sso-session corp]
region = us-west-2
`)

		profiles, err := ListProfilesIn(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []struct{ name, region, source string }{
			{"default", "us-east-1", "credentials"},
			{"prod", "eu-west-1", "credentials"},
			{"sso-dev", "ap-south-1", "config"},
		}
		if len(profiles) != len(want) {
			t.Fatalf("expected %d profiles, got %+v", len(want), profiles)
		}
		for i, w := range want {
			p := profiles[i]
			if p.Name != w.name || p.Region != w.region || p.Source != w.source {
				t.Errorf("profile %d = %+v, want %+v", i, p, w)
			}
		}
		if !hasProfile(profiles, "sso-dev") || hasProfile(profiles, "corp") {
			t.Error("sso-session section must not be treated as a profile")
		}
	})

	t.Run("missing files yield no profiles", func(t *testing.T) {
		t.Parallel()

		profiles, err := ListProfilesIn(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profiles) != 0 {
			t.Errorf("expected no profiles, got %+v", profiles)
		}
	})
}
