package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quarterdeck-io/quartermaster/internal/doctor"
	"github.com/quarterdeck-io/quartermaster/internal/install"
)

func withRunChecks(t *testing.T, results []doctor.Result) {
	t.Helper()
	orig := runChecks
	runChecks = func(sys doctor.System, cfg install.Config) []doctor.Result {
		return results
	}
	t.Cleanup(func() { runChecks = orig })
}

func TestDoctorCmdAllPassing(t *testing.T) {
	withGetwd(t, "/release")
	withRunChecks(t, []doctor.Result{
		{Status: doctor.StatusOK, CheckName: "Privilege", Message: "running as root"},
		{Status: doctor.StatusWarn, CheckName: "Host", Message: "cannot read host facts: no procfs"},
	})

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"doctor"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("warnings must not fail doctor: %v", err)
	}
	if !strings.Contains(out.String(), "ready for 'qm install'") {
		t.Fatalf("success summary missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "[WARN]") {
		t.Fatalf("warn label missing: %q", out.String())
	}
}

func TestDoctorCmdFailure(t *testing.T) {
	withGetwd(t, "/release")
	withRunChecks(t, []doctor.Result{
		{
			Status:         doctor.StatusFail,
			CheckName:      "OS family",
			Message:        "unsupported distribution (ID=\"gentoo\" ID_LIKE=\"\")",
			Recommendation: "qm supports rhel-, debian-, suse-, and arch-family hosts",
		},
	})

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"doctor"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected doctor failure")
	}
	if !strings.Contains(out.String(), "[FAIL]") {
		t.Fatalf("fail label missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "↳") {
		t.Fatalf("recommendation missing: %q", out.String())
	}
}
