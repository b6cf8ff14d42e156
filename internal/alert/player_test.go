package alert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestPlayerCommand(t *testing.T) {
	only := func(names ...string) func(string) (string, error) {
		return func(name string) (string, error) {
			for _, n := range names {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		}
	}

	tests := []struct {
		name     string
		goos     string
		lookPath func(string) (string, error)
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{
			name: "linux prefers mpv", goos: "linux", lookPath: only("ffplay", "mpv"),
			wantName: "mpv", wantArgs: []string{"--no-video", "--really-quiet", "ring.mp3"}, wantOK: true,
		},
		{
			name: "linux falls back to paplay", goos: "linux", lookPath: only("paplay"),
			wantName: "paplay", wantArgs: []string{"ring.mp3"}, wantOK: true,
		},
		{
			name: "linux without players", goos: "linux", lookPath: only(),
		},
		{
			name: "darwin", goos: "darwin", lookPath: only(),
			wantName: "afplay", wantArgs: []string{"ring.mp3"}, wantOK: true,
		},
		{
			name: "windows", goos: "windows", lookPath: only(),
			wantName: "powershell", wantArgs: []string{"-NoProfile", "-Command", "(New-Object Media.SoundPlayer 'ring.mp3').PlaySync()"}, wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := playerCommand(tt.goos, "ring.mp3", tt.lookPath)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("playerCommand() = %s %v, want %s %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestPlayer_Load(t *testing.T) {
	p := NewPlayer(zerolog.Nop())

	if err := p.Load(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Load(missing) succeeded")
	}
	if err := p.Load(t.TempDir()); err == nil {
		t.Error("Load(directory) succeeded")
	}

	ring := filepath.Join(t.TempDir(), "ring.wav")
	if err := os.WriteFile(ring, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := p.Load(ring); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if p.Path() != ring {
		t.Errorf("Path() = %q, want %q", p.Path(), ring)
	}

	if err := p.Load(""); err != nil || p.Path() != "" {
		t.Errorf("Load(\"\") = %v, Path() = %q", err, p.Path())
	}
}

func TestPlayer_BeepsWithoutRingtone(t *testing.T) {
	p := NewPlayer(zerolog.Nop())
	beeps := 0
	p.beep = func() error { beeps++; return nil }

	if err := p.Play(context.Background()); err != nil {
		t.Fatalf("Play() unexpected error: %v", err)
	}
	if beeps != 1 {
		t.Errorf("beeps = %d, want 1", beeps)
	}
}

func TestPlayer_DropsOverlappingPlayback(t *testing.T) {
	ring := filepath.Join(t.TempDir(), "ring.wav")
	if err := os.WriteFile(ring, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewPlayer(zerolog.Nop())
	p.goos = "darwin"
	started := make(chan struct{})
	release := make(chan struct{})
	runs := 0
	p.run = func(ctx context.Context, name string, args ...string) error {
		runs++
		close(started)
		<-release
		return nil
	}
	if err := p.Load(ring); err != nil {
		t.Fatal(err)
	}

	done := make(chan error)
	go func() { done <- p.Play(context.Background()) }()
	<-started

	if err := p.Play(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("overlapping Play() error = %v, want ErrBusy", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Errorf("first Play() error = %v", err)
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestPlayerCommand_WindowsQuoting(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: `C:\tones\bell.wav`, want: `(New-Object Media.SoundPlayer 'C:\tones\bell.wav').PlaySync()`},
		{path: `C:\it's "loud".wav`, want: `(New-Object Media.SoundPlayer 'C:\it''s "loud".wav').PlaySync()`},
		{path: `C:\$(Remove-Item x).wav`, want: `(New-Object Media.SoundPlayer 'C:\$(Remove-Item x).wav').PlaySync()`},
	}

	for _, tt := range tests {
		_, args, _ := playerCommand("windows", tt.path, nil)
		if got := args[len(args)-1]; got != tt.want {
			t.Errorf("script for %q = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestPlayer_LoadWhilePlaying(t *testing.T) {
	ring := filepath.Join(t.TempDir(), "ring.wav")
	if err := os.WriteFile(ring, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewPlayer(zerolog.Nop())
	p.goos = "darwin"
	p.run = func(ctx context.Context, name string, args ...string) error { return nil }
	p.beep = func() error { return nil }

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			p.Play(context.Background())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if err := p.Load(ring); err != nil {
				t.Error(err)
				return
			}
			p.Load("")
		}
	}()
	wg.Wait()

	if p.Path() != "" {
		t.Errorf("Path() = %q after final Load(\"\"), want empty", p.Path())
	}
}
