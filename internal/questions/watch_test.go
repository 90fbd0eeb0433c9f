package questions

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bankDoc(lang string) string {
	return "id: tiny\nversion: v1.0.0\nlang: " + lang + "\nquestions:\n  - {id: a, text: t, keyed: plus, domain: N, facet: 1}\n"
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bankDoc("en")), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	banks := make(chan *Bank, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(b *Bank) { banks <- b }, nil)
	}()

	// Rewrites are spaced past the debounce window so each one settles and
	// reloads; repeating covers the watcher registering after the first write.
	waitFor := func(lang string) {
		t.Helper()
		require.Eventually(t, func() bool {
			_ = os.WriteFile(path, []byte(bankDoc(lang)), 0o644)
			for {
				select {
				case b := <-banks:
					if b.Lang == lang {
						return true
					}
				default:
					return false
				}
			}
		}, 5*time.Second, 2*WatchDebounce)
	}

	waitFor("de")

	require.NoError(t, os.WriteFile(path, []byte("id: tiny\nversion: nope\n"), 0o644))
	time.Sleep(3 * WatchDebounce)
	for len(banks) > 0 {
		assert.Equal(t, "de", (<-banks).Lang, "only the last valid bank may be delivered")
	}

	waitFor("fr")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "bank.yaml"), func(*Bank) {}, nil)
	require.Error(t, err)
}
