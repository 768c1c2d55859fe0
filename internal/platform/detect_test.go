package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestRealDetector_Detect(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %v, want %v", info.OS, runtime.GOOS)
	}
	if info.ArchRaw != runtime.GOARCH {
		t.Errorf("ArchRaw = %v, want %v", info.ArchRaw, runtime.GOARCH)
	}
	if info.Arch == "" {
		t.Error("Arch should not be empty")
	}

	// Distro fields are best effort on Linux and always empty elsewhere
	if runtime.GOOS == "linux" {
		if info.Platform != "" && info.Family == "" {
			t.Error("If Platform is set, Family should also be set")
		}
	} else if info.Platform != "" || info.Family != "" || info.Version != "" {
		t.Errorf("distro fields should be empty on %s, got %+v", runtime.GOOS, info)
	}
}

func TestRealDetector_CancelledContext(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("distro detection only runs on Linux")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// gopsutil may answer from cache before noticing the cancellation, so
	// only the error type is checked.
	if _, err := NewDetector().Detect(ctx); err != nil && !errors.Is(err, context.Canceled) {
		t.Errorf("Detect() error = %v, want context.Canceled", err)
	}
}

func TestStaticDetector(t *testing.T) {
	want := &Info{OS: "windows", Arch: "amd64"}
	d := NewStaticDetector(want)

	got, err := d.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Detect() = %+v, want %+v", got, want)
	}

	// Callers get a copy
	got.OS = "linux"
	if want.OS != "windows" {
		t.Error("Detect() returned the shared Info instead of a copy")
	}

	boom := errors.New("boom")
	d.Err = boom
	if _, err := d.Detect(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Detect() error = %v, want %v", err, boom)
	}
}

func TestStaticDetector_NilInfo(t *testing.T) {
	for name, d := range map[string]*StaticDetector{
		"constructor": NewStaticDetector(nil),
		"zero value":  {},
	} {
		t.Run(name, func(t *testing.T) {
			info, err := d.Detect(context.Background())
			if err == nil {
				t.Fatal("Detect() expected error for nil Info")
			}
			if info != nil {
				t.Errorf("Detect() = %+v, want nil", info)
			}
		})
	}
}

func TestInfo_IsSupported(t *testing.T) {
	tests := []struct {
		os   string
		want bool
	}{
		{"linux", true},
		{"darwin", true},
		{"windows", false},
		{"freebsd", false},
	}

	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			info := &Info{OS: tt.os}
			if got := info.IsSupported(); got != tt.want {
				t.Errorf("IsSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInfo_GetDistro(t *testing.T) {
	tests := []struct {
		name string
		info *Info
		want *Distro
	}{
		{
			name: "Linux with distro info",
			info: &Info{OS: "linux", Platform: "ubuntu", Family: FamilyDebian, Version: "22.04"},
			want: &Distro{ID: "ubuntu", Family: FamilyDebian, Version: "22.04"},
		},
		{
			name: "Linux without distro info",
			info: &Info{OS: "linux"},
		},
		{
			name: "macOS",
			info: &Info{OS: "darwin", Platform: "ignored"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.info.GetDistro()
			if got == nil && tt.want == nil {
				return
			}
			if got == nil || tt.want == nil || *got != *tt.want {
				t.Errorf("GetDistro() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
