package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyState_HandleKey(t *testing.T) {
	tests := []struct {
		name string
		vim  bool
		keys []string
		want []string
	}{
		{name: "gg jumps to top", vim: true, keys: []string{"g", "g"}, want: []string{"", "top"}},
		{name: "dd deletes", vim: true, keys: []string{"d", "d"}, want: []string{"", "delete"}},
		{name: "yy copies", vim: true, keys: []string{"y", "y"}, want: []string{"", "copy"}},
		{name: "broken sequence", vim: true, keys: []string{"d", "j"}, want: []string{"", "down"}},
		{name: "g then G", vim: true, keys: []string{"g", "G"}, want: []string{"", "bottom"}},
		{name: "single keys", vim: true, keys: []string{"k", "a", "e", "r", "x", "R", "c", "?", "q"},
			want: []string{"up", "add", "edit", "reminder", "clear_reminder", "ringtone", "toggle_clock", "help", "quit"}},
		{name: "non-vim d", vim: false, keys: []string{"d"}, want: []string{"delete"}},
		{name: "non-vim g", vim: false, keys: []string{"g"}, want: []string{"top"}},
		{name: "non-vim y", vim: false, keys: []string{"y"}, want: []string{"copy"}},
	}

	km := DefaultKeymap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := KeyState{Vim: tt.vim}
			for i, key := range tt.keys {
				got, consumed := ks.HandleKey(runes(key), km)
				if !consumed {
					t.Errorf("key %q not consumed", key)
				}
				if got != tt.want[i] {
					t.Errorf("key %d %q: action = %q, want %q", i, key, got, tt.want[i])
				}
			}
		})
	}
}

func TestKeyState_Unbound(t *testing.T) {
	ks := KeyState{Vim: true}
	if action, consumed := ks.HandleKey(runes("z"), DefaultKeymap()); consumed || action != "" {
		t.Errorf("HandleKey(z) = %q, %v; want unconsumed", action, consumed)
	}
}

func TestKeyState_Reset(t *testing.T) {
	km := DefaultKeymap()
	ks := KeyState{Vim: true}

	ks.HandleKey(runes("d"), km)
	ks.Reset()

	if action, _ := ks.HandleKey(runes("d"), km); action != "" {
		t.Errorf("after Reset, 'd' = %q, want pending", action)
	}
}
