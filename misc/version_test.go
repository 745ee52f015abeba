package misc

import "testing"

func TestIdentification(t *testing.T) {
	if GetAppName() != "csslearn" {
		t.Errorf("GetAppName() = %q, want %q", GetAppName(), "csslearn")
	}
	if GetVersion() == "" {
		t.Error("GetVersion() returned empty string")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() returned empty string")
	}
}
