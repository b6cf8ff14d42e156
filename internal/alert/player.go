package alert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// ErrBusy is returned by Play while an earlier ringtone is still playing.
var ErrBusy = errors.New("ringtone already playing")

// linuxPlayers are tried in order; the ringtone path is appended.
var linuxPlayers = [][]string{
	{"mpv", "--no-video", "--really-quiet"},
	{"vlc", "--intf", "dummy", "--play-and-exit"},
	{"mplayer", "-really-quiet"},
	{"ffplay", "-nodisp", "-autoexit", "-v", "quiet"},
	{"paplay"},
	{"aplay", "-q"},
}

// Player plays the ringtone through a system audio player, falling back to
// a terminal beep. Only one playback runs at a time.
type Player struct {
	mu      sync.RWMutex
	path    string
	playing atomic.Bool
	log     zerolog.Logger

	goos     string
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
	beep     func() error
}

// NewPlayer creates a player with no ringtone loaded.
func NewPlayer(logger zerolog.Logger) *Player {
	return &Player{
		log:      logger.With().Str("component", "player").Logger(),
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

// Load selects the ringtone file. An empty path selects the beep.
func (p *Player) Load(path string) error {
	if path == "" {
		p.setPath("")
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to load ringtone: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to load ringtone: %s is a directory", path)
	}
	p.setPath(path)
	return nil
}

func (p *Player) setPath(path string) {
	p.mu.Lock()
	p.path = path
	p.mu.Unlock()
}

// Path returns the loaded ringtone, or "" for the beep.
func (p *Player) Path() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path
}

// Play plays the ringtone and blocks until it finishes.
// It returns ErrBusy without playing if a playback is in progress.
func (p *Player) Play(ctx context.Context) error {
	if !p.playing.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer p.playing.Store(false)

	path := p.Path()
	if path == "" {
		return p.beep()
	}

	name, args, ok := playerCommand(p.goos, path, p.lookPath)
	if !ok {
		p.log.Warn().Str("os", p.goos).Msg("no audio player found, beeping instead")
		return p.beep()
	}

	p.log.Debug().Str("player", name).Str("ringtone", path).Msg("playing ringtone")
	if err := p.run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to play ringtone with %s: %w", name, err)
	}
	return nil
}

// playerCommand picks the command that plays path on goos.
func playerCommand(goos, path string, lookPath func(string) (string, error)) (string, []string, bool) {
	switch goos {
	case "darwin":
		return "afplay", []string{path}, true
	case "windows":
		// Single-quoted PowerShell strings expand nothing; ' is escaped by doubling.
		quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
		script := "(New-Object Media.SoundPlayer " + quoted + ").PlaySync()"
		return "powershell", []string{"-NoProfile", "-Command", script}, true
	default:
		for _, cmd := range linuxPlayers {
			if _, err := lookPath(cmd[0]); err == nil {
				args := append(append([]string{}, cmd[1:]...), path)
				return cmd[0], args, true
			}
		}
	}
	return "", nil, false
}
