package cli

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/digits"
	"github.com/persiancal/jdp/internal/jcal"
	"github.com/persiancal/jdp/internal/logging"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// setupCLI pins today to 1404-01-01 and points config and state at a temp
// dir. All globals are restored on cleanup.
func setupCLI(t *testing.T, format string) string {
	t.Helper()
	dir := t.TempDir()

	prevClock := clock
	prevCfg := cfg
	prevConfigPath := configPath
	prevStateFlag := statePathFlag
	prevStatePath := resolvedStatePath
	prevJSON, prevYAML := jsonOutput, yamlOutput
	prevDigits := digitFormatter
	prevLogger := logger
	t.Cleanup(func() {
		clock = prevClock
		cfg = prevCfg
		configPath = prevConfigPath
		statePathFlag = prevStateFlag
		resolvedStatePath = prevStatePath
		jsonOutput, yamlOutput = prevJSON, prevYAML
		digitFormatter = prevDigits
		logger = prevLogger
	})

	clock = func() time.Time {
		return time.Date(2025, 3, 21, 12, 0, 0, 0, jcal.Location())
	}
	cfg = &config.Config{}
	configPath = dir + "/config.toml"
	statePathFlag = ""
	resolvedStatePath = dir + "/state.toml"
	jsonOutput = format == "json"
	yamlOutput = format == "yaml"
	digitFormatter = digits.ASCII
	logger = logging.Nop()
	return dir
}
